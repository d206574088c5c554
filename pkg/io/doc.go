// Package io writes rendered documents to writers and files and reads scene
// files from disk.
//
// Anything that implements [io.WriterTo] can be exported; in svgkit that is
// *svg.Canvas. Failures carry the EXPORT_FAILED or FILE_NOT_FOUND codes from
// pkg/errors:
//
//	if err := io.Export("out.svg", canvas); err != nil {
//	    log.Error(errors.UserMessage(err))
//	}
package io
