// Package basesvc - Test chuyển đổi options và update data.
package basesvc

import (
	"testing"

	"go.mongodb.org/mongo-driver/mongo/options"
)

func TestToFindOneAndUpdateOptions_LuonTraVeBanSauCapNhat(t *testing.T) {
	// UpdateOne phải đọc lại trong cùng lệnh với ReturnDocument(After).
	// Nếu không, update với filter pin field đang bị sửa (vd. duyệt đơn
	// filter theo status cũ) sẽ đọc lại bằng filter gốc và trả 404
	// dù đã ghi thành công.
	cases := []*options.UpdateOptions{
		nil,
		options.Update(),
		options.Update().SetUpsert(true),
		options.Update().SetUpsert(false),
	}
	for i, opts := range cases {
		out := toFindOneAndUpdateOptions(opts)
		if out.ReturnDocument == nil {
			t.Fatalf("case %d: ReturnDocument không được để nil", i)
		}
		if *out.ReturnDocument != options.After {
			t.Errorf("case %d: phải trả về document SAU cập nhật, nhận %v", i, *out.ReturnDocument)
		}
	}
}

func TestToFindOneAndUpdateOptions_GiuCoUpsert(t *testing.T) {
	out := toFindOneAndUpdateOptions(options.Update().SetUpsert(true))
	if out.Upsert == nil || !*out.Upsert {
		t.Error("cờ upsert=true phải được giữ lại")
	}

	out = toFindOneAndUpdateOptions(options.Update().SetUpsert(false))
	if out.Upsert == nil || *out.Upsert {
		t.Error("cờ upsert=false phải được giữ lại")
	}

	out = toFindOneAndUpdateOptions(nil)
	if out.Upsert != nil {
		t.Error("không truyền opts thì không được bật upsert")
	}
}

func TestToUpdateData_MapThuongWrapTrongSet(t *testing.T) {
	update, err := ToUpdateData(map[string]interface{}{"name": "Ana"})
	if err != nil {
		t.Fatalf("ToUpdateData lỗi: %v", err)
	}
	if update.Set == nil || update.Set["name"] != "Ana" {
		t.Errorf("map thường phải được wrap trong $set, nhận %+v", update)
	}
}

func TestToUpdateData_GiuNguyenOperator(t *testing.T) {
	update, err := ToUpdateData(map[string]interface{}{
		"$inc":   map[string]interface{}{"seq": int64(1)},
		"$unset": map[string]interface{}{"approvedAt": ""},
	})
	if err != nil {
		t.Fatalf("ToUpdateData lỗi: %v", err)
	}
	if update.Inc == nil || update.Inc["seq"] != int64(1) {
		t.Errorf("$inc phải được giữ nguyên, nhận %+v", update.Inc)
	}
	if update.Unset == nil {
		t.Errorf("$unset phải được giữ nguyên, nhận %+v", update.Unset)
	}
	if len(update.Set) != 0 {
		t.Errorf("update có operator không được wrap thêm $set, nhận %+v", update.Set)
	}
}

func TestToUpdateData_UpdateDataTruyenThang(t *testing.T) {
	in := &UpdateData{Set: map[string]interface{}{"status": "approved"}}
	out, err := ToUpdateData(in)
	if err != nil {
		t.Fatalf("ToUpdateData lỗi: %v", err)
	}
	if out != in {
		t.Error("*UpdateData phải được trả thẳng, không copy")
	}
}
