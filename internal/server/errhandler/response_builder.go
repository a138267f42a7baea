package errhandler

import (
	"github.com/zestagio/geo-server/pkg/pointer"
)

type Error struct {
	Code    int     `json:"code"`
	Details *string `json:"details,omitempty"`
	Message string  `json:"message"`
}

type Response struct {
	Error Error `json:"error"`
}

var ResponseBuilder = func(code int, msg string, details string) any {
	return Response{
		Error: Error{
			Code:    code,
			Details: pointer.PtrWithZeroAsNil(details),
			Message: msg,
		},
	}
}
