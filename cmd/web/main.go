package main

import "unijobs_backend/internal/app"

func main() {
	app.Run()
}
