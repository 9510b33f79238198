/*
 Licensed under the Apache License, Version 2.0 (the "License");
 you may not use this file except in compliance with the License.
 You may obtain a copy of the License at

     https://www.apache.org/licenses/LICENSE-2.0

 Unless required by applicable law or agreed to in writing, software
 distributed under the License is distributed on an "AS IS" BASIS,
 WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 See the License for the specific language governing permissions and
 limitations under the License.
*/

package control

import (
	"context"
	"encoding/binary"
	"fmt"

	"go.etcd.io/bbolt"

	"jinr.ru/greenlab/go-dds/pkg/ad9833"
	"jinr.ru/greenlab/go-dds/pkg/config"
	"jinr.ru/greenlab/go-dds/pkg/log"
	"jinr.ru/greenlab/go-dds/pkg/srv/control/ifc"
)

const (
	BucketNamePrefix = "dds_"
)

// RegState is the bbolt-backed register shadow. The chip is write-only,
// so the last word written to each register is the only record of its
// contents.
type RegState struct {
	context.Context
	DB *bbolt.DB
}

var _ ifc.State = &RegState{}

func NewRegState(ctx context.Context, cfg *config.Config) (*RegState, error) {
	db, err := bbolt.Open(cfg.DBPath(), 0600, nil)
	if err != nil {
		return nil, err
	}
	if err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName(cfg.DeviceName)))
		return err
	}); err != nil {
		db.Close()
		return nil, err
	}
	return &RegState{
		Context: ctx,
		DB:      db,
	}, nil
}

func uint16ToByte(v uint16) []byte {
	b := make([]byte, 2)
	binary.BigEndian.PutUint16(b, v)
	return b
}

func bucketName(deviceName string) string {
	return fmt.Sprintf("%s%s", BucketNamePrefix, deviceName)
}

// Close ...
func (s *RegState) Close() {
	s.DB.Close()
}

// SetReg ...
func (s *RegState) SetReg(reg ad9833.Reg, word uint16, deviceName string) error {
	log.Debug("Setting register shadow: %s = %#04x", reg, word)
	return s.DB.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(bucketName(deviceName)))
		if b == nil {
			return ErrBucketNotFound{Name: bucketName(deviceName)}
		}
		return b.Put([]byte(reg.String()), uint16ToByte(word))
	})
}

// GetReg ...
func (s *RegState) GetReg(reg ad9833.Reg, deviceName string) (uint16, error) {
	log.Debug("Getting register shadow: %s", reg)
	var value uint16
	if err := s.DB.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(bucketName(deviceName)))
		if b == nil {
			return ErrBucketNotFound{Name: bucketName(deviceName)}
		}
		valueBytes := b.Get([]byte(reg.String()))
		if valueBytes == nil {
			return ErrRegNotWritten{Reg: reg}
		}
		value = binary.BigEndian.Uint16(valueBytes)
		return nil
	}); err != nil {
		return 0, err
	}
	return value, nil
}

// GetRegAll returns the shadow of every register that has been written.
func (s *RegState) GetRegAll(deviceName string) (map[ad9833.Reg]uint16, error) {
	regs := make(map[ad9833.Reg]uint16)
	if err := s.DB.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(bucketName(deviceName)))
		if b == nil {
			return ErrBucketNotFound{Name: bucketName(deviceName)}
		}
		return b.ForEach(func(k, v []byte) error {
			reg, err := ad9833.ParseReg(string(k))
			if err != nil {
				log.Warning("Skipping unknown shadow key: %s", k)
				return nil
			}
			regs[reg] = binary.BigEndian.Uint16(v)
			return nil
		})
	}); err != nil {
		return nil, err
	}
	return regs, nil
}
