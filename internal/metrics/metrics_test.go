package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNewMetrics_Independent(t *testing.T) {
	t.Parallel()
	// Private registries: two instances must not panic on registration.
	a, b := NewMetrics(), NewMetrics()
	a.ObserveUnderflow("sub")
	if got := testutil.ToFloat64(b.underflows.WithLabelValues("sub")); got != 0 {
		t.Errorf("second instance saw %v underflows, want 0", got)
	}
}

func TestMetrics_Observe(t *testing.T) {
	t.Parallel()
	m := NewMetrics()

	m.ObserveOperation("sign", "+", 3)
	m.ObserveOperation("sign", "+", 5)
	m.ObserveOperation("sign", "-", 1)
	m.ObserveUnderflow("subrev")
	m.ObserveBatch(25 * time.Millisecond)

	if got := testutil.ToFloat64(m.operations.WithLabelValues("sign", "+")); got != 2 {
		t.Errorf("operations{sign,+} = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.operations.WithLabelValues("sign", "-")); got != 1 {
		t.Errorf("operations{sign,-} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.underflows.WithLabelValues("subrev")); got != 1 {
		t.Errorf("underflows{subrev} = %v, want 1", got)
	}
	if n := testutil.CollectAndCount(m.operandDigits); n != 1 {
		t.Errorf("operand_digits collected %d series, want 1", n)
	}
}

func TestMetrics_WriteTextfile(t *testing.T) {
	t.Parallel()
	m := NewMetrics()
	m.ObserveOperation("sub", "+", 2)

	path := filepath.Join(t.TempDir(), "magsub.prom")
	if err := m.WriteTextfile(path); err != nil {
		t.Fatalf("WriteTextfile: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	body := string(data)

	for _, want := range []string{
		`magsub_operations_total{op="sub",sign="+"} 1`,
		"magsub_operand_digits_bucket",
		"go_goroutines",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("metrics output should contain %q", want)
		}
	}
}
