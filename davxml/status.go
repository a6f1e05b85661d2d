package davxml

import (
	"fmt"
	"net/http"

	"github.com/xxxsen/davmeta/element"
)

const HTTPVersion = "HTTP/1.1"

// extended status codes, http://www.webdav.org/specs/rfc4918.html#status.code.extensions.to.http11
const (
	StatusMulti               = 207
	StatusUnprocessableEntity = 422
	StatusLocked              = 423
	StatusFailedDependency    = 424
	StatusInsufficientStorage = 507
)

var statusText = map[int]string{
	StatusMulti:               "Multi-Status",
	StatusUnprocessableEntity: "Unprocessable Entity",
	StatusLocked:              "Locked",
	StatusFailedDependency:    "Failed Dependency",
	StatusInsufficientStorage: "Insufficient Storage",
}

// StatusText returns the reason phrase of code, empty when unknown.
func StatusText(code int) string {
	if t, ok := statusText[code]; ok {
		return t
	}
	return http.StatusText(code)
}

type HTTPStatus struct {
	Code   int
	Reason string
}

func NewHTTPStatus(code int) HTTPStatus {
	return HTTPStatus{Code: code, Reason: StatusText(code)}
}

func (s HTTPStatus) String() string {
	return fmt.Sprintf("%s %d %s", HTTPVersion, s.Code, s.Reason)
}

// Status renders s as "HTTP/1.1 <code> <reason>".
func Status(s HTTPStatus) *element.Element {
	return textElement(NameStatus, s.String())
}
