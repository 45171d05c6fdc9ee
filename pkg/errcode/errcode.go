package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError

	// Logging errors
	CreateLogFileError

	// Sources errors
	SourcesConfigError
	SourcesNotFoundError

	// Darwin Core table errors
	TableEmptyError
	TableMissingColumnError
	TableShortRowError
	TableReadError

	// Lexicon errors
	LexiconPhaseError
	LexiconVariantError
	LexiconSourceError
	LexiconSourcesFailedError
	LexiconCancelledError

	// Output errors
	OutputCreateError
	OutputWriteError
	OutputCloseError
	OutputSortError
	OutputDeleteError
)
