package main

import (
	_ "github.com/joho/godotenv/autoload" // load .env if it exists
	app "github.com/reporemover/reporemover-api/pkg/api"
)

func main() {
	a := app.NewApp()
	a.RunForever()
}
