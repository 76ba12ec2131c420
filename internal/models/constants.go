package models

const (
	OrderStatusPlaced    = "placed"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"

	EventMenuView       = "menu_view"
	EventItemView       = "item_view"
	EventAddToCart      = "add_to_cart"
	EventRemoveFromCart = "remove_from_cart"
	EventMoodSelect     = "mood_select"
	EventBundleAccept   = "bundle_accept"
	EventBundleDismiss  = "bundle_dismiss"
	EventUpsellAccept   = "upsell_accept"
	EventUpsellDismiss  = "upsell_dismiss"
	EventCheckout       = "checkout"
)
