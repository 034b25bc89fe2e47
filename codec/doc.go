// Package codec compresses byte payloads into self-describing blocks.
//
// # Block Format
//
//	┌────────────┬───────────────┬──────────────────┬──────────┐
//	│ type (u8)  │ raw size (u32)│ packed size (u32)│ payload  │
//	└────────────┴───────────────┴──────────────────┴──────────┘
//
// Sizes are little endian. A packed size of zero means the payload is stored
// uncompressed, which Compress does whenever compression saves less than 10%.
//
// # Algorithms
//
//   - None: payload stored as is
//   - LZ4: github.com/pierrec/lz4/v4 block mode, fast
//   - ZSTD: github.com/klauspost/compress/zstd, better ratio
//
// The block does not record anything about the payload beyond its size; a
// bit buffer's bit length must be tracked separately.
package codec
