package methods

import (
	"crypto/md5"
	"encoding/hex"

	"github.com/google/uuid"
)

func Md5Str(data string) string {

	// 创建一个 MD5 哈希对象
	hash := md5.New()

	// 将数据写入哈希对象
	hash.Write([]byte(data))

	// 获取加密结果（字节数组）
	md5Bytes := hash.Sum(nil)

	// 将加密结果转换为十六进制字符串
	md5String := hex.EncodeToString(md5Bytes)

	return md5String
}

// RecordID 基于瓦片内容路径生成稳定ID，保证重复入库幂等；
// 无内容路径时退回随机UUID（跨运行不保证稳定）
func RecordID(tileUrl string) string {
	if tileUrl != "" {
		return Md5Str(tileUrl)
	}
	return uuid.New().String()
}
