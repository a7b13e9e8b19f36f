package utility

import (
	"go.mongodb.org/mongo-driver/bson"
)

// ToMap chuyển đổi một struct bất kỳ thành map[string]interface{}
// thông qua bson marshal/unmarshal, giữ nguyên bson tags.
func ToMap(input interface{}) (map[string]interface{}, error) {
	data, err := bson.Marshal(input)
	if err != nil {
		return nil, err
	}

	var result map[string]interface{}
	if err := bson.Unmarshal(data, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// ToBsonM chuyển đổi struct thành bson.M, dùng khi build update documents
func ToBsonM(input interface{}) (bson.M, error) {
	data, err := bson.Marshal(input)
	if err != nil {
		return nil, err
	}

	var result bson.M
	if err := bson.Unmarshal(data, &result); err != nil {
		return nil, err
	}
	return result, nil
}
