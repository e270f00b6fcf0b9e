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

	// Database errors
	DBConnectionError
	DBUnsupportedDriverError
	DBNotConnectedError
	DBTableExistsCheckError
	DBQueryTablesError
	DBDropTableError
	DBEmptyDatabaseError

	// Schema errors
	SchemaCreateError
	SchemaMigrateError
	SchemaCollationError

	// Lookup errors
	LookupQueryError
	LookupDuplicateSpeciesError

	// Classifier errors
	ClassifierModelLoadError
	ClassifierLabelsError
	ClassifierImageError
	ClassifierInferenceError

	// Identify errors
	IdentifyImageError
	IdentifyClassifyError
)
