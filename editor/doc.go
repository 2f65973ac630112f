// Package editor provides a Bubble Tea text editor component backed by the
// buffer package.
//
// Columns everywhere are display columns: a wide cluster such as 界 or 📦
// covers two, and the caret can only sit on the first. Long lines scroll
// horizontally to keep the caret visible.
package editor
