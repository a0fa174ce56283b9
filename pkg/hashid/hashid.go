package hashid

import (
	"Noted/config"
	"Noted/pkg/log"
	"errors"

	"github.com/speps/go-hashids/v2"
	"go.uber.org/zap"
)

var ErrInvalid = errors.New("invalid id")

// Codec renders snowflake keys as opaque strings. Snowflake values do
// not fit a JavaScript number, so they never leave the server raw.
type Codec struct {
	h *hashids.HashID
}

func New(salt string) (*Codec, error) {
	hd := hashids.NewData()
	hd.Salt = salt
	hd.MinLength = 12
	h, err := hashids.NewWithData(hd)
	if err != nil {
		return nil, err
	}
	return &Codec{h: h}, nil
}

// NewCodec builds the codec salted with app.id_salt.
func NewCodec(conf *config.Config) *Codec {
	c, err := New(conf.App.IDSalt)
	if err != nil {
		log.L.Fatal("failed to build id codec", zap.Error(err))
	}
	return c
}

func (c *Codec) Encode(id uint64) string {
	s, _ := c.h.EncodeInt64([]int64{int64(id)})
	return s
}

func (c *Codec) Decode(s string) (uint64, error) {
	if s == "" {
		return 0, ErrInvalid
	}
	nums, err := c.h.DecodeInt64WithError(s)
	if err != nil || len(nums) != 1 || nums[0] <= 0 {
		return 0, ErrInvalid
	}
	return uint64(nums[0]), nil
}
