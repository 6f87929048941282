// Package textutil holds string helpers for client-supplied names.
package textutil
