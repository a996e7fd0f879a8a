// Copyright (c) 2026 AirGapSync Authors
//
// This file is part of airgapsync.
//
// airgapsync is licensed under the GNU Affero General Public License v3.0.
// See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html

package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordOperation_Success(t *testing.T) {
	before := testutil.ToFloat64(Operations.WithLabelValues("test_op_success", "success"))
	RecordOperation("test_op_success", time.Now(), nil)
	after := testutil.ToFloat64(Operations.WithLabelValues("test_op_success", "success"))
	assert.Equal(t, before+1, after)
}

func TestRecordOperation_Failure(t *testing.T) {
	beforeOps := testutil.ToFloat64(Operations.WithLabelValues("test_op_failure", "failure"))
	beforeErrs := testutil.ToFloat64(Errors.WithLabelValues("test_op_failure"))

	RecordOperation("test_op_failure", time.Now(), errors.New("boom"))

	assert.Equal(t, beforeOps+1, testutil.ToFloat64(Operations.WithLabelValues("test_op_failure", "failure")))
	assert.Equal(t, beforeErrs+1, testutil.ToFloat64(Errors.WithLabelValues("test_op_failure")))
}
