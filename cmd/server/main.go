package main

import (
	"os"

	"github.com/0xshariq/ai-powered-chatbot/internal/app"
)

// @title           AI Chatbot API
// @version         1.0
// @description     Chat session, history, and generation dispatch service.
// @BasePath        /api
func main() {
	os.Exit(app.Run())
}
