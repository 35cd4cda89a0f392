package state

import (
	"bytes"
	"errors"
	"testing"

	"github.com/fbtracker/v1/pkg/constants"
	"github.com/fbtracker/v1/pkg/types"
)

func TestEncodeDecode(t *testing.T) {
	testCases := []struct {
		name   string
		record types.TrackerRecord
	}{
		{"初始状态", types.TrackerRecord{TotalChampionships: 17, CurrentSeasonKey: 2010, SeasonsProcessed: 0}},
		{"中间状态", types.TrackerRecord{TotalChampionships: 19, CurrentSeasonKey: 2013, SeasonsProcessed: 3}},
		{"终态", types.TrackerRecord{TotalChampionships: 19, CurrentSeasonKey: 2025, SeasonsProcessed: 15}},
		{"极值", types.TrackerRecord{TotalChampionships: ^uint64(0), CurrentSeasonKey: ^uint16(0), SeasonsProcessed: ^uint8(0)}},
		{"零值", types.TrackerRecord{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			encoded := Encode(&tc.record)
			if len(encoded) != constants.TrackerRecordSize {
				t.Fatalf("编码长度 = %d, 期望 %d", len(encoded), constants.TrackerRecordSize)
			}

			decoded, err := Decode(encoded)
			if err != nil {
				t.Fatalf("解码失败: %v", err)
			}
			if *decoded != tc.record {
				t.Errorf("往返结果 %+v, 期望 %+v", *decoded, tc.record)
			}
		})
	}
}

func TestEncodeLayout(t *testing.T) {
	// 字节布局必须与历史部署完全一致：小端，固定偏移
	record := &types.TrackerRecord{
		TotalChampionships: 0x0102030405060708,
		CurrentSeasonKey:   0x0A0B,
		SeasonsProcessed:   0x0C,
	}
	expected := []byte{0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01, 0x0B, 0x0A, 0x0C}

	if got := Encode(record); !bytes.Equal(got, expected) {
		t.Errorf("编码字节 %x, 期望 %x", got, expected)
	}
}

func TestDecodeShortBuffer(t *testing.T) {
	testCases := []struct {
		name string
		data []byte
	}{
		{"空输入", nil},
		{"10字节", make([]byte, 10)},
		{"1字节", []byte{0x01}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(tc.data)
			if err == nil {
				t.Fatal("期望解码失败")
			}
			var decodeErr *types.DecodeError
			if !errors.As(err, &decodeErr) {
				t.Errorf("错误类型 %T, 期望 *types.DecodeError", err)
			}
		})
	}
}

func TestDecodeIgnoresTrailingBytes(t *testing.T) {
	record := NewRecord()
	padded := append(Encode(record), 0xFF, 0xFF)

	decoded, err := Decode(padded)
	if err != nil {
		t.Fatalf("解码失败: %v", err)
	}
	if *decoded != *record {
		t.Errorf("解码结果 %+v, 期望 %+v", *decoded, *record)
	}
}

func TestNewRecord(t *testing.T) {
	record := NewRecord()

	if record.TotalChampionships != constants.InitialChampionships {
		t.Errorf("初始冠军数 = %d, 期望 %d", record.TotalChampionships, constants.InitialChampionships)
	}
	if record.CurrentSeasonKey != constants.StartSeason {
		t.Errorf("起始赛季 = %d, 期望 %d", record.CurrentSeasonKey, constants.StartSeason)
	}
	if record.SeasonsProcessed != 0 {
		t.Errorf("已处理赛季 = %d, 期望 0", record.SeasonsProcessed)
	}
}

func TestIsComplete(t *testing.T) {
	testCases := []struct {
		season   uint16
		complete bool
	}{
		{2010, false},
		{2024, false},
		{2025, true},
		{3000, true},
	}

	for _, tc := range testCases {
		record := &types.TrackerRecord{CurrentSeasonKey: tc.season}
		if got := IsComplete(record); got != tc.complete {
			t.Errorf("IsComplete(season=%d) = %v, 期望 %v", tc.season, got, tc.complete)
		}
	}
}

func TestSeasonString(t *testing.T) {
	record := &types.TrackerRecord{CurrentSeasonKey: 2010}
	if got := record.SeasonString(); got != "2010-2011" {
		t.Errorf("SeasonString() = %s, 期望 2010-2011", got)
	}
}
