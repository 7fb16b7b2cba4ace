package main

import "neads_backend/internal/app"

func main() {
	app.Run()
}
