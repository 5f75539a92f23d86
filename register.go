package seqio

// Import format extractors to trigger their registration.
import (
	_ "github.com/simonhull/seqio/internal/fasta"
	_ "github.com/simonhull/seqio/internal/fastq"
)
