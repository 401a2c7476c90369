// Package encode renders value trees in a readable bracketed form, with
// optional terminal colors. It exists for inspection and the CLI; the wire
// codec that talks to the backend is a separate concern and not part of
// this module.
package encode
