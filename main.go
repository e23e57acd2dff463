package main

import "github.com/learningmode/video-api/cmd"

// @title           Video Transcript API
// @version         1.0.0
// @description     API serving video metadata and transcripts, with a speech-to-text fallback for videos without captions
// @contact.name    API Support
// @contact.url     https://github.com/learningmode/video-api
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8080
// @BasePath        /
// @schemes         http https
func main() {
	cmd.Execute()
}
