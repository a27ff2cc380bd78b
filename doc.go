/*
Package scex extracts Supercell asset packages (.sc containers) into
standard files: sprite sheets from _tex.sc packages as PNG images, and
compressed .csv tables as plain CSV.

A package is an optionally compressed byte stream (LZHAM, zstd or a
headerless LZMA variant, sniffed by magic) holding a sequence of chunks.
Image chunks carry a packed pixel sub-format and, for two chunk types, a
32x32 block-tiled pixel order that has to be folded back into raster order.

The package focuses on extraction only: there is no encoder and unknown
chunk types are skipped rather than validated.
*/
package scex
