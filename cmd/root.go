package cmd

import (
	"fmt"
	"os"

	"github.com/learningmode/video-api/pkg/config"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "video-api",
	Short: "Video Transcript API server",
	Long: `Video Transcript API - metadata and transcripts for videos

This API fetches video metadata from the YouTube Data API and produces a
transcript for each video: platform captions when the video has them, or
a speech-to-text transcription of the extracted audio when it does not.

Features:
  • Video metadata via YouTube Data API
  • Platform caption track retrieval
  • Audio extraction and object-storage staging
  • Asynchronous speech-to-text transcription with polling`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// NewRootCmd creates a new root command (exported for testing)
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	// Set up configuration loading with lazy initialization
	cobra.OnInitialize(loadConfig)
}

// loadConfig loads the configuration when a command needs it
// This is called lazily only when a command that needs config runs
func loadConfig() {
	// Skip config loading for commands that don't need it
	cmd, _, _ := rootCmd.Find(os.Args[1:])
	if cmd != nil && (cmd.Name() == "version" || cmd.Name() == "help") {
		return
	}

	// Initialize the configuration
	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		os.Exit(1)
	}
}
