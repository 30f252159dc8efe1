package event

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/r3labs/diff/v3"
	"github.com/sirupsen/logrus"
)

// CompareProperties lists the json properties whose values differ between
// before and after. Nested changes are named by their dotted path. A nil
// before lists every property of after.
func CompareProperties(before, after interface{}) UpdatedProperties {
	changelog, err := diff.Diff(before, after, diff.TagName("json"))
	if err != nil {
		logrus.WithError(err).Warnf("compare %T with %T", before, after)
		return nil
	}

	r := make(UpdatedProperties, 0, len(changelog))
	for _, c := range changelog {
		r = append(r, UpdatedProperty{PropertyName: strings.Join(c.Path, "."), OldValue: describe(c.From), NewValue: describe(c.To)})
	}
	sort.SliceStable(r, func(i, j int) bool { return r[i].PropertyName < r[j].PropertyName })
	return r
}

func describe(v interface{}) string {
	if v == nil {
		return ""
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.String:
		return reflect.ValueOf(v).String()
	case reflect.Bool, reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Float32, reflect.Float64:
		return fmt.Sprint(v)
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}
