package nn

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/edsrzf/mmap-go"
)

// Binary layout of the checkpoint file:
// - All the data is stored in little-endian layout
// - All the matrices are written in row-major
// - The magic number/version consists of 4 bytes:
//   - 77 (which is the ASCII code for M), uint8
//   - 76 (which is the ASCII code for L), uint8
//   - 1 The major part of the current version number, uint8
//   - 0 The minor part of the current version number, uint8
//
// - 4 bytes (uint32) number of structure widths
// - 4 bytes (uint32) for each width
// - All weights for a layer, followed by all the biases of the same layer, as float64 bits
// - Other layers follow just like the above point
var checkpointHeader = [4]byte{77, 76, 1, 0}

func (p *Params) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	err = p.Write(f)
	if err != nil {
		return err
	}
	return f.Close()
}

func (p *Params) Write(w io.Writer) error {
	var bw = bufio.NewWriter(w)

	_, err := bw.Write(checkpointHeader[:])
	if err != nil {
		return err
	}

	var structure = p.Structure()
	var buf = make([]byte, 4+4*len(structure))
	binary.LittleEndian.PutUint32(buf, uint32(len(structure)))
	for i, width := range structure {
		binary.LittleEndian.PutUint32(buf[4+4*i:], uint32(width))
	}
	_, err = bw.Write(buf)
	if err != nil {
		return err
	}

	for _, m := range p.matrices() {
		err = writeSlice(bw, m.Data)
		if err != nil {
			return err
		}
	}
	return bw.Flush()
}

func writeSlice(w io.Writer, data []float64) error {
	buf := make([]byte, 8)
	for j := range data {
		binary.LittleEndian.PutUint64(buf, math.Float64bits(data[j]))
		_, err := w.Write(buf)
		if err != nil {
			return err
		}
	}
	return nil
}

// LoadParams maps a checkpoint file read-only and decodes it.
func LoadParams(path string) (*Params, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if info.Size() == 0 {
		return nil, fmt.Errorf("LoadParams(%s): empty file: %w", path, ErrBadCheckpoint)
	}

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, err
	}
	defer data.Unmap()

	p, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("LoadParams(%s): %w", path, err)
	}
	return p, nil
}

// Decode parses a checkpoint image. The returned params do not alias data.
func Decode(data []byte) (*Params, error) {
	if len(data) < 8 {
		return nil, fmt.Errorf("truncated header: %w", ErrBadCheckpoint)
	}
	if data[0] != checkpointHeader[0] || data[1] != checkpointHeader[1] {
		return nil, fmt.Errorf("magic word does not match: %w", ErrBadCheckpoint)
	}
	if data[2] != checkpointHeader[2] || data[3] != checkpointHeader[3] {
		return nil, fmt.Errorf("version %d.%d is not supported: %w", data[2], data[3], ErrBadCheckpoint)
	}

	var count = int(binary.LittleEndian.Uint32(data[4:]))
	var offset = 8
	if count < 2 || len(data) < offset+4*count {
		return nil, fmt.Errorf("bad structure header: %w", ErrBadCheckpoint)
	}
	var structure = make([]int, count)
	for i := range structure {
		var width = int64(binary.LittleEndian.Uint32(data[offset:]))
		if width > int64(len(data)) {
			return nil, fmt.Errorf("width %d exceeds file size: %w", width, ErrBadCheckpoint)
		}
		structure[i] = int(width)
		offset += 4
	}

	var payload int64
	for i := 0; i+1 < len(structure); i++ {
		payload += 8 * int64(structure[i]+1) * int64(structure[i+1])
	}
	if int64(len(data)-offset) != payload {
		return nil, fmt.Errorf("got %d payload bytes, want %d: %w", len(data)-offset, payload, ErrBadCheckpoint)
	}

	p, err := NewParams(structure)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrBadCheckpoint)
	}
	for _, m := range p.matrices() {
		for j := range m.Data {
			m.Data[j] = math.Float64frombits(binary.LittleEndian.Uint64(data[offset:]))
			offset += 8
		}
	}
	return p, nil
}
