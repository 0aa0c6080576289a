package main

import (
	"na15/app"
)

func main() {
	app.Execute()
}
