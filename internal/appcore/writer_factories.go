package appcore

import (
	"io"

	"blastnh/internal/output"
	"blastnh/internal/pipeline"
	"blastnh/internal/writers"
)

// ---------------- Neighborhood writer ----------------

type NeighborhoodWriterFactory struct {
	Format string
	Header bool
}

func NewNeighborhoodWriterFactory(format string, header bool) NeighborhoodWriterFactory {
	return NeighborhoodWriterFactory{Format: format, Header: header}
}

func (w NeighborhoodWriterFactory) Start(out io.Writer, bufSize int) (chan<- output.Block, <-chan error) {
	return writers.StartNeighborhoodWriter(out, w.Format, w.Header, bufSize)
}

// ---------------- Seed hit writer ----------------

type SeedHitWriterFactory struct {
	Format string
	Header bool
}

func NewSeedHitWriterFactory(format string, header bool) SeedHitWriterFactory {
	return SeedHitWriterFactory{Format: format, Header: header}
}

func (w SeedHitWriterFactory) Start(out io.Writer, bufSize int) (chan<- pipeline.Hit, <-chan error) {
	return writers.StartSeedHitWriter(out, w.Format, w.Header, bufSize)
}
