// Package playlistsvc - Test builder pipeline listing danh sách phát.
package playlistsvc

import (
	"testing"

	"meta_tube/internal/global"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func setTestColNames() {
	global.MongoDB_ColNames = global.MongoDB_CollectionName{
		Users:          "users",
		Images:         "images",
		Videos:         "videos",
		PlaylistVideos: "playlist_videos",
	}
}

func TestBuildPlaylistBasePipeline(t *testing.T) {
	accountID := primitive.NewObjectID()
	pipeline := buildPlaylistBasePipeline(bson.M{"accountId": accountID})
	require.Len(t, pipeline, 2)

	assert.Equal(t, bson.M{"$match": bson.M{"accountId": accountID}}, pipeline[0])
	assert.Equal(t, bson.M{"$sort": bson.M{"createdAt": -1}}, pipeline[1])
}

func TestPlaylistSummaryStages_VideoDauTienTheoThuTuThemVao(t *testing.T) {
	setTestColNames()
	stages := playlistSummaryStages("h", "/p")
	require.NotEmpty(t, stages)

	lookup := stages[0]["$lookup"].(bson.M)
	assert.Equal(t, "playlist_videos", lookup["from"])
	assert.Equal(t, "playlistId", lookup["foreignField"])

	add := stages[1]["$addFields"].(bson.M)
	assert.Equal(t, bson.M{"$size": "$_members"}, add["videoCount"])

	first, ok := add["_firstMember"].(bson.M)
	require.True(t, ok)
	sortArray := first["$first"].(bson.M)["$sortArray"].(bson.M)
	assert.Equal(t, bson.M{"createdAt": 1}, sortArray["sortBy"], "video đầu tiên phải theo thứ tự thêm vào, không phải thứ tự tự nhiên")

	// firstVideoIdName của danh sách trống phải là chuỗi rỗng
	add2 := stages[3]["$addFields"].(bson.M)
	idName := add2["firstVideoIdName"].(bson.M)
	ifNull := idName["$ifNull"].(bson.A)
	assert.Equal(t, "", ifNull[1], "danh sách trống phải cho firstVideoIdName rỗng thay vì null")

	// Toàn bộ field tạm phải bị project ra khỏi kết quả
	last := stages[len(stages)-1]
	project := last["$project"].(bson.M)
	for _, tmp := range []string{"_members", "_firstMember", "_firstVideoArr", "_firstVideo"} {
		assert.Equal(t, 0, project[tmp], "field tạm %s phải bị loại", tmp)
	}
}

func TestBuildPlaylistVideosBasePipeline_ThuTuThemVao(t *testing.T) {
	playlistID := primitive.NewObjectID()
	pipeline := buildPlaylistVideosBasePipeline(playlistID)
	require.Len(t, pipeline, 2)

	assert.Equal(t, bson.M{"$match": bson.M{"playlistId": playlistID}}, pipeline[0])
	assert.Equal(t, bson.M{"$sort": bson.M{"createdAt": 1}}, pipeline[1], "video trong danh sách phát phải theo thứ tự thêm vào")
}

func TestPlaylistVideoStages_JoinBatBuocVaFlatten(t *testing.T) {
	setTestColNames()
	stages := playlistVideoStages("h", "/p")
	require.GreaterOrEqual(t, len(stages), 3)

	lookup := stages[0]["$lookup"].(bson.M)
	assert.Equal(t, "videos", lookup["from"])

	assert.Equal(t, bson.M{"$unwind": "$video"}, stages[1], "video đã xóa phải bị loại khỏi danh sách phát")

	replaceRoot := stages[2]["$replaceRoot"].(bson.M)
	merge := replaceRoot["newRoot"].(bson.M)["$mergeObjects"].(bson.A)
	assert.Equal(t, "$video", merge[0])
	assert.Equal(t, bson.M{"addedAt": "$createdAt"}, merge[1], "thời điểm thêm vào phải được giữ lại trên video")

	last := stages[len(stages)-1]
	project := last["$project"].(bson.M)
	assert.Equal(t, 0, project["author.password"])
}
