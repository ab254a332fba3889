package basesvc

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các hàm builder stage aggregation dùng chung cho những service đọc dữ liệu
// tổng hợp (video, post, comment, playlist...). Mỗi builder trả về một bson.M
// là một stage hoàn chỉnh, ghép lại thành pipeline theo thứ tự gọi.

// MatchStage tạo stage $match từ điều kiện lọc.
func MatchStage(filter bson.M) bson.M {
	return bson.M{"$match": filter}
}

// SortStage tạo stage $sort theo một field duy nhất.
// order: 1 (tăng dần) hoặc -1 (giảm dần).
func SortStage(field string, order int) bson.M {
	return bson.M{"$sort": bson.M{field: order}}
}

// LookupStage tạo stage $lookup join sang collection khác theo cặp localField/foreignField.
func LookupStage(from, localField, foreignField, as string) bson.M {
	return bson.M{
		"$lookup": bson.M{
			"from":         from,
			"localField":   localField,
			"foreignField": foreignField,
			"as":           as,
		},
	}
}

// UnwindStage tạo stage $unwind cho field mảng (join bắt buộc - document
// không có phần tử join sẽ bị loại khỏi kết quả).
func UnwindStage(path string) bson.M {
	return bson.M{"$unwind": "$" + path}
}

// UnwindPreserveStage tạo stage $unwind giữ lại document khi mảng rỗng
// (join tùy chọn - field join sẽ là null thay vì loại document).
func UnwindPreserveStage(path string) bson.M {
	return bson.M{
		"$unwind": bson.M{
			"path":                       "$" + path,
			"preserveNullAndEmptyArrays": true,
		},
	}
}

// ImageURLExpr tạo expression dựng URL đầy đủ từ một expression tên file ảnh:
// host + publicPath + "/" + <tên file>. Tên file null hoặc không tồn tại cho ra
// chuỗi rỗng thay vì null.
//
// nameExpr là tham chiếu field hoặc expression cho ra tên file,
// ví dụ "$name" hoặc {$arrayElemAt: [...]}.
func ImageURLExpr(nameExpr interface{}, host, publicPath string) bson.M {
	return bson.M{
		"$cond": bson.A{
			bson.M{"$ifNull": bson.A{nameExpr, false}},
			bson.M{"$concat": bson.A{host, publicPath, "/", nameExpr}},
			"",
		},
	}
}

// ImageJoinStages join tùy chọn sang collection ảnh theo localField (ObjectID
// tham chiếu ảnh) và gán URL đầy đủ vào targetField. Tham chiếu null hoặc ảnh
// đã bị xóa cho ra chuỗi rỗng, document gốc không bao giờ bị loại.
// Field tạm của lookup được project ra khỏi kết quả.
func ImageJoinStages(imagesCollection, localField, targetField, host, publicPath string) []bson.M {
	// Field tạm không được chứa dấu chấm để không thành path lồng nhau
	tmp := "_img_" + strings.ReplaceAll(targetField, ".", "_")
	nameExpr := bson.M{"$arrayElemAt": bson.A{"$" + tmp + ".name", 0}}
	return []bson.M{
		LookupStage(imagesCollection, localField, "_id", tmp),
		{"$addFields": bson.M{targetField: ImageURLExpr(nameExpr, host, publicPath)}},
		{"$project": bson.M{tmp: 0}},
	}
}

// SensitiveUserFields liệt kê các field của user không bao giờ được trả ra
// trong dữ liệu tác giả nhúng. Danh sách này dùng chung cho mọi projection
// có nhúng user để không lộ field nhạy cảm ở bất kỳ view nào.
var SensitiveUserFields = []string{
	"password",
	"forgotPasswordToken",
	"verifyEmailToken",
	"token",
	"role",
	"status",
	"verify",
}

// StripSensitiveUserFields tạo map exclusion cho subdocument user nhúng dưới prefix.
// Ví dụ prefix "author" cho ra {"author.password": 0, ...}, merge vào $project exclusion.
func StripSensitiveUserFields(prefix string) bson.M {
	out := bson.M{}
	for _, f := range SensitiveUserFields {
		if prefix != "" {
			out[prefix+"."+f] = 0
		} else {
			out[f] = 0
		}
	}
	return out
}

// AuthorLookupStages tạo chuỗi stage join tác giả (user) vào document dưới field as:
// $lookup users + $unwind bắt buộc + join ảnh avatar thành URL.
// Video/post/comment mất tác giả là dữ liệu hỏng nên dùng unwind bắt buộc.
func AuthorLookupStages(usersCollection, imagesCollection, localField, as, host, publicPath string) []bson.M {
	stages := []bson.M{
		LookupStage(usersCollection, localField, "_id", as),
		UnwindStage(as),
	}
	stages = append(stages, ImageJoinStages(imagesCollection, as+".avatarId", as+".avatar", host, publicPath)...)
	return stages
}

// ReactionCountStages tạo chuỗi stage đếm like/dislike và cờ isLiked/isDisliked
// theo góc nhìn của viewer cho document hiện tại (localField thường là "_id").
// Viewer zero (chưa đăng nhập) luôn cho isLiked = isDisliked = false.
// Field tạm của lookup được project ra khỏi kết quả.
func ReactionCountStages(reactionsCollection, localField string, viewerID primitive.ObjectID) []bson.M {
	const tmp = "_reactions"

	countByType := func(reactionType string) bson.M {
		return bson.M{
			"$size": bson.M{
				"$filter": bson.M{
					"input": "$" + tmp,
					"as":    "r",
					"cond":  bson.M{"$eq": bson.A{"$$r.type", reactionType}},
				},
			},
		}
	}

	mineByType := func(reactionType string) interface{} {
		if viewerID.IsZero() {
			return false
		}
		return bson.M{
			"$gt": bson.A{
				bson.M{
					"$size": bson.M{
						"$filter": bson.M{
							"input": "$" + tmp,
							"as":    "r",
							"cond": bson.M{
								"$and": bson.A{
									bson.M{"$eq": bson.A{"$$r.type", reactionType}},
									bson.M{"$eq": bson.A{"$$r.accountId", viewerID}},
								},
							},
						},
					},
				},
				0,
			},
		}
	}

	return []bson.M{
		LookupStage(reactionsCollection, localField, "contentId", tmp),
		{
			"$addFields": bson.M{
				"likeCount":    countByType("like"),
				"dislikeCount": countByType("dislike"),
				"isLiked":      mineByType("like"),
				"isDisliked":   mineByType("dislike"),
			},
		},
		{"$project": bson.M{tmp: 0}},
	}
}
