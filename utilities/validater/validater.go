// Copyright 2020 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the 'License');
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an 'AS IS' BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package validater

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/BrunoReboul/crmpipe/utilities/erm"
	"github.com/BrunoReboul/crmpipe/utilities/obs"
)

const tagKeyName = "valid"

// validater interface
type validater interface {
	validate(interface{}) (bool, error)
}

// defaultValidater is always valid
type defaultValidater struct {
}

// validate interface returns true for a valid field, false and why in the error otherwise
func (v defaultValidater) validate(val interface{}) (bool, error) {
	return true, nil
}

// isNotZeroValueValidater do not accept zero value
type isNotZeroValueValidater struct {
}

// validate interface returns true for a valid field, false and why in the error otherwise
func (v isNotZeroValueValidater) validate(value interface{}) (bool, error) {
	kind := reflect.TypeOf(value).Kind()
	switch kind {
	case reflect.String:
		if len(strings.TrimSpace(value.(string))) == 0 {
			return false, fmt.Errorf("should NOT be a zero value %s", kind)
		}
	case reflect.Int, reflect.Int64:
		if reflect.ValueOf(value).Int() == 0 {
			return false, fmt.Errorf("should NOT be a zero value %s", kind)
		}
	case reflect.Slice:
		if reflect.ValueOf(value).Len() == 0 {
			return false, fmt.Errorf("should NOT be a zero value %s", kind)
		}
	default:
		return false, fmt.Errorf("unmanaged kind by 'isNotZeroValueValidater' %s", kind)
	}
	return true, nil
}

// isLocationValidater accepts a bucket location, empty is accepted, combine with isNotZeroValue to require it
type isLocationValidater struct {
}

// validate interface returns true for a valid field, false and why in the error otherwise
func (v isLocationValidater) validate(value interface{}) (bool, error) {
	location, ok := value.(string)
	if !ok {
		return false, fmt.Errorf("should be a string")
	}
	if location == "" {
		return true, nil
	}
	if _, err := obs.ParseLocation(location); err != nil {
		return false, err
	}
	return true, nil
}

// isCompressionValidater accepts only the parquet compression codecs supported by pqt
type isCompressionValidater struct {
}

// validate interface returns true for a valid field, false and why in the error otherwise
func (v isCompressionValidater) validate(value interface{}) (bool, error) {
	acceptedValueList := []string{"", "none", "snappy", "gzip", "zstd"}
	compression, ok := value.(string)
	if !ok {
		return false, fmt.Errorf("should be a string")
	}
	for _, acceptedValue := range acceptedValueList {
		if acceptedValue == compression {
			return true, nil
		}
	}
	return false, fmt.Errorf("should be one of %v", acceptedValueList)
}

// compositeValidater all validaters must pass
type compositeValidater []validater

// validate interface returns true for a valid field, false and why in the error otherwise
func (v compositeValidater) validate(value interface{}) (bool, error) {
	for _, validater := range v {
		if ok, err := validater.validate(value); !ok {
			return false, err
		}
	}
	return true, nil
}

func getValidater(tagValue string) validater {
	var validaters compositeValidater
	for _, tagPart := range strings.Split(tagValue, ",") {
		switch strings.TrimSpace(tagPart) {
		case "isNotZeroValue":
			validaters = append(validaters, isNotZeroValueValidater{})
		case "isLocation":
			validaters = append(validaters, isLocationValidater{})
		case "isCompression":
			validaters = append(validaters, isCompressionValidater{})
		}
	}
	if len(validaters) == 0 {
		return defaultValidater{}
	}
	return validaters
}

// getValidationErrors recursively loop through a struct to find validation errors
func getValidationErrors(structure interface{}, pedigree string) []error {
	errs := []error{}
	if structure == nil {
		return errs
	}
	value := reflect.ValueOf(structure)
	if value.Kind() == reflect.Interface || value.Kind() == reflect.Ptr {
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return []error{fmt.Errorf("type %s is not a struct", value.Kind())}
	}

	for i := 0; i < value.NumField(); i++ {
		valueField := value.Field(i)
		typeField := value.Type().Field(i)
		if typeField.PkgPath != "" {
			// unexported
			continue
		}
		if valueField.Kind() == reflect.Interface {
			valueField = valueField.Elem()
		}
		// time.Time is a struct with only unexported fields: tag it valid:"-" to skip recursion
		if typeField.Tag.Get(tagKeyName) != "-" &&
			(valueField.Kind() == reflect.Struct || (valueField.Kind() == reflect.Ptr && !valueField.IsNil() && valueField.Elem().Kind() == reflect.Struct)) {
			childErrs := getValidationErrors(valueField.Interface(), fmt.Sprintf("%s/%s", pedigree, typeField.Name))
			errs = append(errs, childErrs...)
		} else if valueField.IsValid() {
			validater := getValidater(typeField.Tag.Get(tagKeyName))
			ok, err := validater.validate(valueField.Interface())
			if !ok {
				errs = append(errs, fmt.Errorf("%s '%s' %v", pedigree, typeField.Name, err))
			}
		}
	}
	return errs
}

// ValidateStruct validates the fields of a struct, the returned error wraps erm.ErrConfiguration
func ValidateStruct(structure interface{}, pedigree string) (err error) {
	errs := getValidationErrors(structure, pedigree)
	if len(errs) > 0 {
		messages := make([]string, len(errs))
		for i, err := range errs {
			messages[i] = err.Error()
		}
		return fmt.Errorf("%w: settings validation failed: %s", erm.ErrConfiguration, strings.Join(messages, "; "))
	}
	return nil
}
