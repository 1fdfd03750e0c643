package sink

import (
	"context"
	"errors"
	"fmt"

	"github.com/sbezverk/sortbench/report"
	"github.com/sbezverk/sortbench/stats"
	"google.golang.org/protobuf/types/known/structpb"
)

var (
	ErrEncodeSeries = errors.New("failed to encode report series")
	ErrDecodeSeries = errors.New("failed to decode report series")
)

// Sink consumes finished report series.
type Sink interface {
	Publish(context.Context, *report.Series) error
	Close() error
}

// Encode converts s into a protobuf Struct. An undefined standard deviation is
// encoded as a null value.
func Encode(s *report.Series) (*structpb.Struct, error) {
	points := make([]interface{}, len(s.Points))
	for i, p := range s.Points {
		points[i] = map[string]interface{}{
			"length": p.Length,
			"mean":   p.Mean,
			"stddev": p.StdDev,
		}
	}
	var sd interface{}
	if v, ok := s.StdDev.Value(); ok {
		sd = v
	}
	st, err := structpb.NewStruct(map[string]interface{}{
		"name":   s.Name,
		"label":  s.Label,
		"marker": s.Marker,
		"count":  s.Count,
		"mean":   s.Mean,
		"stddev": sd,
		"points": points,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodeSeries, err)
	}

	return st, nil
}

// Decode is the reverse of Encode.
func Decode(st *structpb.Struct) (*report.Series, error) {
	f := st.GetFields()
	name := f["name"].GetStringValue()
	if name == "" {
		return nil, fmt.Errorf("%w: missing algorithm name", ErrDecodeSeries)
	}
	s := &report.Series{
		Name:   name,
		Label:  f["label"].GetStringValue(),
		Marker: f["marker"].GetStringValue(),
		Count:  int(f["count"].GetNumberValue()),
		Mean:   f["mean"].GetNumberValue(),
		StdDev: stats.Undefined(),
	}
	if v, ok := f["stddev"].GetKind().(*structpb.Value_NumberValue); ok {
		s.StdDev = stats.Defined(v.NumberValue)
	}
	values := f["points"].GetListValue().GetValues()
	s.Points = make([]report.Point, 0, len(values))
	for i, pv := range values {
		ps := pv.GetStructValue()
		if ps == nil {
			return nil, fmt.Errorf("%w: point %d is not a struct", ErrDecodeSeries, i)
		}
		pf := ps.GetFields()
		s.Points = append(s.Points, report.Point{
			Length: int(pf["length"].GetNumberValue()),
			Mean:   pf["mean"].GetNumberValue(),
			StdDev: pf["stddev"].GetNumberValue(),
		})
	}

	return s, nil
}
