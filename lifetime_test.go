package beans_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kyunghwan/beans"
)

func TestLifetime(t *testing.T) {
	t.Run("constants", func(t *testing.T) {
		assert.Equal(t, beans.Lifetime(0), beans.Singleton)
		assert.Equal(t, beans.Lifetime(1), beans.Prototype)
	})

	t.Run("string", func(t *testing.T) {
		tests := []struct {
			lifetime beans.Lifetime
			want     string
		}{
			{beans.Singleton, "Singleton"},
			{beans.Prototype, "Prototype"},
			{beans.Lifetime(99), "Unknown(99)"},
			{beans.Lifetime(-1), "Unknown(-1)"},
		}

		for _, tt := range tests {
			assert.Equal(t, tt.want, tt.lifetime.String())
		}
	})

	t.Run("is valid", func(t *testing.T) {
		assert.True(t, beans.Singleton.IsValid())
		assert.True(t, beans.Prototype.IsValid())
		assert.False(t, beans.Lifetime(2).IsValid())
		assert.False(t, beans.Lifetime(-1).IsValid())
	})

	t.Run("parse", func(t *testing.T) {
		tests := []struct {
			in      string
			want    beans.Lifetime
			wantErr bool
		}{
			{"singleton", beans.Singleton, false},
			{"Prototype", beans.Prototype, false},
			{" SINGLETON ", beans.Singleton, false},
			{"scoped", 0, true},
			{"", 0, true},
		}

		for _, tt := range tests {
			got, err := beans.ParseLifetime(tt.in)
			if tt.wantErr {
				var lifetimeErr beans.LifetimeError
				require.ErrorAs(t, err, &lifetimeErr, tt.in)
				assert.Equal(t, tt.in, lifetimeErr.Value)
				continue
			}
			require.NoError(t, err, tt.in)
			assert.Equal(t, tt.want, got)
		}
	})

	t.Run("json", func(t *testing.T) {
		type config struct {
			Lifetime beans.Lifetime `json:"lifetime"`
		}

		data, err := json.Marshal(config{Lifetime: beans.Prototype})
		require.NoError(t, err)
		assert.JSONEq(t, `{"lifetime":"Prototype"}`, string(data))

		var decoded config
		require.NoError(t, json.Unmarshal([]byte(`{"lifetime":"prototype"}`), &decoded))
		assert.Equal(t, beans.Prototype, decoded.Lifetime)

		assert.Error(t, json.Unmarshal([]byte(`{"lifetime":"transient"}`), &decoded))
		assert.Error(t, json.Unmarshal([]byte(`{"lifetime":1}`), &decoded))

		_, err = json.Marshal(config{Lifetime: beans.Lifetime(5)})
		assert.Error(t, err)
	})
}
