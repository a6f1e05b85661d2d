package element

import "fmt"

// DAVNamespace is the namespace every WebDAV vocabulary element lives in.
const DAVNamespace = "DAV:"

// QName is a namespace qualified element name.
type QName struct {
	Space string
	Local string
}

func NewQName(space, local string) QName {
	return QName{Space: space, Local: local}
}

// DAV returns the name of local inside the DAV: namespace.
func DAV(local string) QName {
	return QName{Space: DAVNamespace, Local: local}
}

func (q QName) String() string {
	if len(q.Space) == 0 {
		return q.Local
	}
	return fmt.Sprintf("{%s}%s", q.Space, q.Local)
}
