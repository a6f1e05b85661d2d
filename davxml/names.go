package davxml

import "github.com/xxxsen/davmeta/element"

var (
	NameDisplayName      = element.DAV("displayname")
	NameGetContentLength = element.DAV("getcontentlength")
	NameGetContentType   = element.DAV("getcontenttype")
	NameGetLastModified  = element.DAV("getlastmodified")
	NameLockDiscovery    = element.DAV("lockdiscovery")
	NameActiveLock       = element.DAV("activelock")
	NameCollection       = element.DAV("collection")
	NameResourceType     = element.DAV("resourcetype")
	NameResponse         = element.DAV("response")
	NameDepth            = element.DAV("depth")
	NameLockType         = element.DAV("locktype")
	NameLockScope        = element.DAV("lockscope")
	NameLockEntry        = element.DAV("lockentry")
	NameLockRoot         = element.DAV("lockroot")
	NameSupportedLock    = element.DAV("supportedlock")
	NameStatus           = element.DAV("status")
	NameMultistatus      = element.DAV("multistatus")
	NameProp             = element.DAV("prop")
	NamePropstat         = element.DAV("propstat")
	NameLockToken        = element.DAV("locktoken")
	NameHref             = element.DAV("href")
)

// marker names used inside lockentry
var (
	NameExclusive = element.DAV("exclusive")
	NameShared    = element.DAV("shared")
	NameNone      = element.DAV("none")
	NameRead      = element.DAV("read")
	NameWrite     = element.DAV("write")
)
