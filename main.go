package main

import "github.com/ChethakaL/resturant-saas-sub004/cmd"

func main() {
	cmd.Execute()
}
