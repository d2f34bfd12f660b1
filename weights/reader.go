package weights

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/gomlx/go-mpsgraph/types"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Record is one named tensor of a weights file.
type Record struct {
	Name     string
	DataType types.DataType
	Shape    types.Shape
	Data     []byte
}

// String implements fmt.Stringer.
func (r *Record) String() string {
	return fmt.Sprintf("%s: %s%s (%s)", r.Name, r.DataType, r.Shape, humanize.IBytes(uint64(len(r.Data))))
}

// File is a weights file loaded in memory.
type File struct {
	ID      uuid.UUID
	Version uint32
	Records []*Record
	byName  map[string]*Record
}

// Read loads the weights file at path.
func Read(path string) (*File, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read weights file")
	}
	f, err := Parse(b)
	if err != nil {
		return nil, errors.WithMessage(err, path)
	}
	return f, nil
}

// Parse decodes the contents of a weights file.
func Parse(b []byte) (*File, error) {
	var header Header
	if err := binary.Read(bytes.NewReader(b), binary.LittleEndian, &header); err != nil {
		return nil, errors.Wrap(err, "weights: read header")
	}
	if header.Magic != Magic {
		return nil, errors.Errorf("weights: bad magic 0x%08x", header.Magic)
	}
	if header.Version != Version {
		return nil, errors.Errorf("weights: unsupported version %d", header.Version)
	}

	// Every record takes at least its metadata block.
	if maxCount := (uint64(len(b)) - Alignment) / Alignment; uint64(header.Count) > maxCount {
		return nil, errors.Errorf("weights: %d records do not fit in %d bytes", header.Count, len(b))
	}

	f := &File{
		ID:      header.ID,
		Version: header.Version,
		Records: make([]*Record, 0, header.Count),
		byName:  make(map[string]*Record, header.Count),
	}
	offset := uint64(Alignment)
	for i := 0; i < int(header.Count); i++ {
		r, next, err := parseRecord(b, offset)
		if err != nil {
			return nil, errors.WithMessagef(err, "weights: record %d", i)
		}
		if _, dup := f.byName[r.Name]; dup {
			return nil, errors.Errorf("weights: duplicate tensor %q", r.Name)
		}
		f.Records = append(f.Records, r)
		f.byName[r.Name] = r
		offset = next
	}
	return f, nil
}

// parseRecord decodes the record at offset and returns the offset of the
// next one.
func parseRecord(b []byte, offset uint64) (*Record, uint64, error) {
	if offset+Alignment > uint64(len(b)) {
		return nil, 0, errors.Errorf("metadata at %d past end of file", offset)
	}
	var md RecordMetadata
	if err := binary.Read(bytes.NewReader(b[offset:offset+Alignment]), binary.LittleEndian, &md); err != nil {
		return nil, 0, errors.Wrap(err, "read metadata")
	}
	if md.Sentinel != RecordSentinel {
		return nil, 0, errors.Errorf("bad sentinel 0x%08x at %d", md.Sentinel, offset)
	}
	dtype := types.DataType(md.DataType)
	if !dtype.Valid() {
		return nil, 0, errors.Errorf("invalid data type %s", dtype)
	}

	pos := offset + Alignment
	extraEnd := pos + 8*uint64(md.Rank) + uint64(md.NameLength)
	if extraEnd > uint64(len(b)) {
		return nil, 0, errors.New("dims and name past end of file")
	}
	shape := make(types.Shape, md.Rank)
	for i := range shape {
		shape[i] = int64(binary.LittleEndian.Uint64(b[pos:]))
		pos += 8
	}
	name := string(b[pos:extraEnd])
	if name == "" {
		return nil, 0, errors.Errorf("empty tensor name at %d", offset)
	}

	size := md.SizeInBytes
	if md.Offset < extraEnd || size > uint64(len(b)) || md.Offset > uint64(len(b))-size {
		return nil, 0, errors.Errorf("data of %q out of bounds", name)
	}
	// The data fits in the file, so a valid shape has fewer bits than it.
	want, err := dataSize(shape, dtype, 8*uint64(len(b)))
	if err != nil {
		return nil, 0, errors.WithMessagef(err, "%q", name)
	}
	if want != size {
		return nil, 0, errors.Errorf("%q %s%s has %d bytes, want %d", name, dtype, shape, size, want)
	}
	r := &Record{
		Name:     name,
		DataType: dtype,
		Shape:    shape,
		Data:     b[md.Offset : md.Offset+size],
	}
	return r, alignTo(md.Offset+size, Alignment), nil
}

// dataSize returns the packed byte size of a tensor, rejecting negative
// dimensions and sizes above maxBits.
func dataSize(shape types.Shape, dtype types.DataType, maxBits uint64) (uint64, error) {
	bits := uint64(dtype.BitSize())
	for _, d := range shape {
		if d < 0 {
			return 0, errors.Errorf("negative dimension in shape %s", shape)
		}
		if d != 0 && bits > maxBits/uint64(d) {
			return 0, errors.Errorf("shape %s too large for the file", shape)
		}
		bits *= uint64(d)
	}
	return (bits + 7) / 8, nil
}

// Lookup returns the record named name, or nil.
func (f *File) Lookup(name string) *Record {
	return f.byName[name]
}

// Names returns the sorted tensor names.
func (f *File) Names() []string {
	names := make([]string, 0, len(f.Records))
	for _, r := range f.Records {
		names = append(names, r.Name)
	}
	sort.Strings(names)
	return names
}

// TotalBytes is the size of the tensor data of every record.
func (f *File) TotalBytes() uint64 {
	var n uint64
	for _, r := range f.Records {
		n += uint64(len(r.Data))
	}
	return n
}

// Flat decodes the named record as a flat Go slice.
func Flat[T types.Supported](f *File, name string) ([]T, error) {
	r := f.Lookup(name)
	if r == nil {
		return nil, errors.Errorf("weights: no tensor %q", name)
	}
	if want := types.DataTypeOf[T](); r.DataType != want {
		return nil, errors.Errorf("weights: tensor %q is %s, not %s", name, r.DataType, want)
	}
	return types.Flat[T](r.Data)
}
