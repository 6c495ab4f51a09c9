package adapter

import (
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

const traceIDHeader = "X-Trace-ID"

// withTraceID tags every outgoing request with a fresh trace id unless the
// caller already set one.
func withTraceID(_ *resty.Client, req *resty.Request) error {
	if req.Header.Get(traceIDHeader) == "" {
		req.SetHeader(traceIDHeader, uuid.NewString())
	}
	return nil
}
