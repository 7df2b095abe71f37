package main

import (
	"flag"
	"log"

	"github.com/gopxl/mainthread/v2"

	"tagbounce/taglib"
)

func main() {
	flag.Parse()
	mainthread.Run(func() {
		if err := taglib.Main(); err != nil {
			log.Fatalf("tagbounce: %v", err)
		}
	})
}
