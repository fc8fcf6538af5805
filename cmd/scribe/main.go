package main

import "speaker-scribe/cmd/scribe/cmd"

// @title           Speaker Scribe API
// @version         1.0
// @description     Upload audio and receive a speaker-annotated transcript.

// @license.name  MIT

// @BasePath  /api/v1

func main() {
	cmd.Execute()
}
