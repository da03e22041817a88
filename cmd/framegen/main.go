// Command framegen generates a sequence of synthetic JPEG frames for
// manually exercising the pack command.
package main

import (
	"fmt"
	"image/jpeg"
	"os"

	"github.com/fogleman/gg"
)

func main() {
	const (
		count  = 24
		width  = 320
		height = 240
	)

	if err := os.MkdirAll("tmp", 0755); err != nil {
		fmt.Printf("Error creating tmp directory: %v\n", err)
		os.Exit(1)
	}

	for i := 0; i < count; i++ {
		dc := gg.NewContext(width, height)
		dc.SetRGB(0.08, 0.08, 0.14)
		dc.Clear()

		// A circle sweeping left to right across the sequence.
		x := float64(width) * (float64(i) + 0.5) / float64(count)
		dc.SetRGB(0.30, 0.72, 0.45)
		dc.DrawCircle(x, float64(height)/2, 28)
		dc.Fill()

		filename := fmt.Sprintf("tmp/frame-%04d.jpg", i)
		f, err := os.Create(filename)
		if err != nil {
			fmt.Printf("Error creating file: %v\n", err)
			continue
		}

		if err := jpeg.Encode(f, dc.Image(), &jpeg.Options{Quality: 85}); err != nil {
			fmt.Printf("Error encoding JPEG: %v\n", err)
		}
		f.Close()

		fmt.Printf("Generated %s (%dx%d)\n", filename, width, height)
	}
}
