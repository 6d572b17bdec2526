package methods

import (
	"testing"
)

func TestRecordIDDeterministic(t *testing.T) {
	a := RecordID("tiles/building_01.b3dm")
	b := RecordID("tiles/building_01.b3dm")
	if a != b {
		t.Fatalf("相同内容路径应生成相同ID: %s != %s", a, b)
	}
	if len(a) != 32 {
		t.Fatalf("md5十六进制ID长度应为32, 实际为 %d", len(a))
	}
	if a == RecordID("tiles/building_02.b3dm") {
		t.Fatal("不同内容路径不应生成相同ID")
	}
}

func TestRecordIDUuidFallback(t *testing.T) {
	a := RecordID("")
	b := RecordID("")
	if len(a) != 36 {
		t.Fatalf("UUID长度应为36, 实际为 %d", len(a))
	}
	// 随机UUID回退路径不保证跨运行稳定
	if a == b {
		t.Fatal("UUID回退应每次生成新ID")
	}
}
