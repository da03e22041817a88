// Package summarizer provides summary generation for assembly results.
package summarizer

import "time"

// Summary contains all data collected during an assembly run.
type Summary struct {
	// Metadata
	GeneratedAt time.Time

	// Input information
	Input InputInfo

	// Output stream details
	Output OutputInfo

	// Rejected frames, in offer order
	Rejects []RejectInfo
}

// InputInfo describes the frame source.
type InputInfo struct {
	Dir     string
	Offered int
}

// OutputInfo describes the assembled stream.
type OutputInfo struct {
	Path     string
	Accepted int
	Width    int
	Height   int
	FileSize int64
}

// RejectInfo records one rejected frame.
type RejectInfo struct {
	File   string
	Reason string
}

// NewSummary creates a new Summary with the current timestamp.
func NewSummary() *Summary {
	return &Summary{
		GeneratedAt: time.Now(),
	}
}

// Builder provides a fluent interface for building a Summary.
type Builder struct {
	summary *Summary
}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{
		summary: NewSummary(),
	}
}

// WithInput sets input information.
func (b *Builder) WithInput(dir string, offered int) *Builder {
	b.summary.Input = InputInfo{
		Dir:     dir,
		Offered: offered,
	}
	return b
}

// WithOutput sets output stream information.
func (b *Builder) WithOutput(output OutputInfo) *Builder {
	b.summary.Output = output
	return b
}

// AddReject appends a rejected frame.
func (b *Builder) AddReject(file, reason string) *Builder {
	b.summary.Rejects = append(b.summary.Rejects, RejectInfo{
		File:   file,
		Reason: reason,
	})
	return b
}

// Build returns the constructed Summary.
func (b *Builder) Build() *Summary {
	return b.summary
}
