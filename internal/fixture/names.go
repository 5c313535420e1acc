package fixture

import (
	"reflect"
	"strings"
)

func yamlFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}
	return name
}

func trimRoot(namespace string) string {
	if i := strings.IndexByte(namespace, '.'); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}
