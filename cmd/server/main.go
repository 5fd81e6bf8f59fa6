package main

import (
	"os"

	"boardgame-chatbot/backend/internal/app"
)

// @title        Board Game Chatbot API
// @version      1.0
// @description  Chat front-end for board game recommendations and rule explanations, backed by a remote AI service.
// @host         localhost:8000
// @BasePath     /api
func main() {
	os.Exit(app.Run())
}
