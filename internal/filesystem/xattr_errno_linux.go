package filesystem

import "golang.org/x/sys/unix"

// errNoAttr is returned for a name without an extended attribute.
const errNoAttr = unix.ENODATA
