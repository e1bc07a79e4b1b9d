package main

import (
	"github.com/sirupsen/logrus"

	"github.com/redish-go/redish/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		logrus.Fatalf("error executing command: %v", err)
	}
}
