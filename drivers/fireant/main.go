package main

import (
	tapfireant "github.com/fireant-io/tap-fireant"
	driver "github.com/fireant-io/tap-fireant/drivers/fireant/internal"
)

func main() {
	tapfireant.RegisterDriver(&driver.Fireant{})
}
