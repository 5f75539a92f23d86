// Package seqio provides streaming FASTA and FASTQ parsing.
//
// seqio reads sequence files of any size with memory bounded by the largest
// record, not by the file. Records are returned as views into an internal
// buffer, so the common loop allocates nothing per record.
//
// # Quick Start
//
// Reading every record of a file:
//
//	r, err := seqio.Open("reads.fq.gz")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer r.Close()
//
//	for rec, err := range r.Records() {
//		if err != nil {
//			log.Fatal(err)
//		}
//		fmt.Printf("%s\t%d\n", rec.ID(), rec.Len())
//	}
//
// Any io.Reader works with NewReader:
//
//	r, err := seqio.NewReader(conn, seqio.WithPath("upload"))
//
// # Formats
//
//   - FASTA: '>' header line followed by zero or more sequence lines, joined
//   - FASTQ: four-line records ('@' header, sequence, '+' separator, quality)
//
// The format is detected from the first byte that is not a line terminator.
// Open also recognizes gzip and zstd compressed input by its magic bytes.
// Both '\n' and "\r\n" line endings are accepted.
//
// # Record Lifetime
//
// A Record's Header, Seq and Qual alias the Reader's buffer and are only
// valid until the next call to Next. Record.Valid reports whether a view is
// still current. Keep a record with Clone:
//
//	var longest seqio.Record
//	for rec, err := range r.Records() {
//		if err != nil {
//			return err
//		}
//		if rec.Len() > longest.Len() {
//			longest = rec.Clone()
//		}
//	}
//
// # Error Handling
//
// Parsing stops at the first malformed record; there is no recovery. Every
// error a Reader returns matches one sentinel through errors.Is:
//
//   - ErrEmptyInput, ErrUnrecognizedFormat: detection failed
//   - ErrTruncatedRecord: the stream ended inside a record
//   - ErrInvalidHeaderLine, ErrInvalidSeparatorLine: a line lacks its marker byte
//   - ErrQualityLengthMismatch: FASTQ quality and sequence lengths differ
//   - ErrSourceRead: the io.Reader failed; errors.Unwrap gives its error
//
// Parse errors are *ParseError values carrying the 1-based record number
// and the byte offset of the offending line:
//
//	var pe *seqio.ParseError
//	if errors.As(err, &pe) {
//		log.Printf("record %d, offset %d: %s", pe.Record, pe.Offset, pe.Reason)
//	}
//
// # Writing
//
// Writer formats records back to text, optionally wrapping FASTA sequences:
//
//	w, err := seqio.NewWriter(os.Stdout, seqio.FormatFASTA, seqio.WithLineWidth(60))
//	if err != nil {
//		return err
//	}
//	defer w.Close()
//
// # Concurrency
//
// A Reader is not safe for concurrent use. Independent streams parse in
// parallel with one Reader each; SummarizeMany does that for a list of
// files.
//
// # Logging
//
// Readers log at debug level through log/slog when given WithLogger:
// detected format, buffer growth and terminal errors. Nothing is logged by
// default.
package seqio
