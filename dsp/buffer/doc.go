// Package buffer provides the fixed-size frame storage behind the streaming
// STFT pipeline.
//
// [Accumulator] forms 50%-overlapped frames from a running sample stream by
// writing every sample into two staggered buffers, so no frame is ever
// recopied. [OverlapAdder] keeps the two most recent synthesized frames and
// sums the head of the newer with the tail of the older one. Both allocate
// only at construction.
package buffer
