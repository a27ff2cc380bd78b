package scex

import "errors"

var (
	// ErrFileTooSmall indicates the input is too short to hold a package header.
	ErrFileTooSmall = errors.New("file too small")
	// ErrDecompress indicates package decompression failed.
	ErrDecompress = errors.New("decompress failed")
	// ErrLZHAMUnsupported indicates SCLZ (LZHAM) data on a platform without an LZHAM decoder.
	ErrLZHAMUnsupported = errors.New("LZHAM compression is not supported on this platform")
	// ErrUnknownPixelType indicates an unrecognized per-pixel sub-format code.
	ErrUnknownPixelType = errors.New("unknown pixel type")
	// ErrCreateFile indicates output file creation failed.
	ErrCreateFile = errors.New("create file failed")
	// ErrSaveImage indicates sprite image encoding or writing failed.
	ErrSaveImage = errors.New("save image failed")
	// ErrWriteOutput indicates writing extracted data failed.
	ErrWriteOutput = errors.New("write output failed")
)
