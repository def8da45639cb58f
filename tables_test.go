package mmcsd

import (
	"reflect"
	"testing"
)

// Every slice shipped in a layout is a wire format constant. A table
// entry violating the slice contract or exceeding the register would
// silently corrupt decoded fields, so all of them are checked here.
func TestLayoutContracts(t *testing.T) {
	layouts := map[string]any{
		"sdCID":   sdCIDLayout,
		"mmcCID":  mmcCIDLayout,
		"sdCSDv1": sdCSDv1Layout,
		"sdCSDv2": sdCSDv2Layout,
		"mmcCSD":  mmcCSDLayout,
	}

	for name, layout := range layouts {
		t.Run(name, func(t *testing.T) {
			v := reflect.ValueOf(layout)
			for i := 0; i < v.NumField(); i++ {
				field := v.Field(i)
				fieldname := v.Type().Field(i).Name

				slices := []reflect.Value{field}
				if field.Kind() == reflect.Array {
					slices = slices[:0]
					for j := 0; j < field.Len(); j++ {
						slices = append(slices, field.Index(j))
					}
				}

				for _, s := range slices {
					end := s.FieldByName("End").Uint()
					start := s.FieldByName("Start").Uint()
					if end < start || end-start >= 32 {
						t.Errorf("%s: invalid slice [%d:%d]", fieldname, end, start)
					}
					if end > 127 {
						t.Errorf("%s: slice [%d:%d] exceeds register", fieldname, end, start)
					}
				}
			}
		})
	}
}
