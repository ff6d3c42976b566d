package main

import (
	"fmt"
	"log"
	"os"

	goodp "github.com/VantageDataChat/GoODP"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	doc, err := goodp.OpenTemplate(cfg.Build.TemplatePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open template: %v\n", err)
		os.Exit(1)
	}

	builder := goodp.NewBuilder(doc, goodp.BuildOptions{
		ProjectRoot:    cfg.Build.ProjectRoot,
		ExpectedSlides: deckSlideCount,
	})
	if err := builder.Build(thesisDeck); err != nil {
		fmt.Fprintf(os.Stderr, "build: %v\n", err)
		os.Exit(1)
	}

	for _, a := range builder.Assets().Registered() {
		if a.Width > 0 {
			log.Printf("embedded %s (%dx%d, %s)", a.Target, a.Width, a.Height, a.MediaType)
		} else {
			log.Printf("embedded %s (%s)", a.Target, a.MediaType)
		}
	}

	// The output file is only opened once every in-memory mutation has
	// succeeded; a failed build leaves no artifact.
	if err := doc.Save(cfg.Build.OutputPath); err != nil {
		fmt.Fprintf(os.Stderr, "save: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote: %s\n", cfg.Build.OutputPath)
}
