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

package erm

import (
	"errors"
	"strings"

	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"google.golang.org/api/googleapi"
)

// nonTransientErrors content or setting errors, their message may hold a 5xx looking number
var nonTransientErrors = []error{ErrConfiguration, ErrInvalidArgument, ErrEvent, ErrParse, ErrEncode}

var transientErrors = []string{"500", "501", "502", "503", "504", "505", "506", "507", "508", "510", "511"}

// IsTransient check if the error is a server side 5xx
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return gerr.Code >= 500
	}
	var awsErr *awshttp.ResponseError
	if errors.As(err, &awsErr) {
		return awsErr.HTTPStatusCode() >= 500
	}
	for _, sentinel := range nonTransientErrors {
		if errors.Is(err, sentinel) {
			return false
		}
	}
	erroMessage := err.Error()
	for _, transientError := range transientErrors {
		if strings.Contains(erroMessage, transientError) {
			return true
		}
	}
	return false
}

// LogMessage returns the log message matching the error kind
func LogMessage(err error) string {
	if IsTransient(err) {
		return "redo_on_transient"
	}
	return "retry"
}
