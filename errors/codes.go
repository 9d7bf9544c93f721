package errors

// ErrorCode identifies an application error category in API responses.
type ErrorCode int32

const (
	ErrorCode_HTTP_OK ErrorCode = 0

	// General
	ErrorCode_INTERNAL         ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT ErrorCode = 1001
	ErrorCode_NOT_FOUND        ErrorCode = 1002
	ErrorCode_INVALID_PAYLOAD  ErrorCode = 1003

	// Meeting record / analytics
	ErrorCode_INVALID_RECORD           ErrorCode = 2000
	ErrorCode_REPORT_NOT_FOUND         ErrorCode = 2001
	ErrorCode_REPORT_GENERATION_FAILED ErrorCode = 2002

	// Export / calendar
	ErrorCode_UNSUPPORTED_FORMAT     ErrorCode = 3000
	ErrorCode_EXPORT_FAILED          ErrorCode = 3001
	ErrorCode_CALENDAR_EXPORT_FAILED ErrorCode = 3002

	// Infrastructure
	ErrorCode_STORAGE_FAILED  ErrorCode = 4000
	ErrorCode_CACHE_FAILED    ErrorCode = 4001
	ErrorCode_DB_QUERY_FAILED ErrorCode = 4002
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:                  "HTTP_OK",
	ErrorCode_INTERNAL:                 "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:         "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:                "NOT_FOUND",
	ErrorCode_INVALID_PAYLOAD:          "INVALID_PAYLOAD",
	ErrorCode_INVALID_RECORD:           "INVALID_RECORD",
	ErrorCode_REPORT_NOT_FOUND:         "REPORT_NOT_FOUND",
	ErrorCode_REPORT_GENERATION_FAILED: "REPORT_GENERATION_FAILED",
	ErrorCode_UNSUPPORTED_FORMAT:       "UNSUPPORTED_FORMAT",
	ErrorCode_EXPORT_FAILED:            "EXPORT_FAILED",
	ErrorCode_CALENDAR_EXPORT_FAILED:   "CALENDAR_EXPORT_FAILED",
	ErrorCode_STORAGE_FAILED:           "STORAGE_FAILED",
	ErrorCode_CACHE_FAILED:             "CACHE_FAILED",
	ErrorCode_DB_QUERY_FAILED:          "DB_QUERY_FAILED",
}

// String returns the symbolic name of the error code
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
