package drive

import (
	"testing"

	"github.com/qmshan/blogapi/api/user"
	"github.com/qmshan/blogapi/shared/apperr"
)

type mockVendor struct {
	lastList     ListRequest
	lastFileID   string
	listResponse map[string]interface{}
	downloadResp map[string]interface{}
}

func (m *mockVendor) ListFiles(req ListRequest) (map[string]interface{}, error) {
	m.lastList = req
	return m.listResponse, nil
}

func (m *mockVendor) DownloadURL(fileID string) (map[string]interface{}, error) {
	m.lastFileID = fileID
	return m.downloadResp, nil
}

func testCaller() *user.AuthUser {
	return &user.AuthUser{ID: 7, Username: "alice"}
}

func TestListAppliesDefaults(t *testing.T) {
	vendor := &mockVendor{listResponse: map[string]interface{}{"errcode": float64(0)}}
	svc := NewService(vendor, "space-1", "files.blog.example")

	data, err := svc.List(ListRequest{}, testCaller())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	if vendor.lastList.SpaceID != "space-1" {
		t.Fatalf("spaceid = %q", vendor.lastList.SpaceID)
	}
	if vendor.lastList.FatherID != "space-1" {
		t.Fatalf("fatherid = %q", vendor.lastList.FatherID)
	}
	if vendor.lastList.SortType != 1 || vendor.lastList.Limit != 100 || vendor.lastList.Start != 0 {
		t.Fatalf("defaults not applied: %+v", vendor.lastList)
	}

	if data["logged_in"] != true {
		t.Fatal("response must carry logged_in true")
	}
	if data["user"] == nil {
		t.Fatal("response must carry the verified user")
	}
}

func TestListKeepsExplicitPaging(t *testing.T) {
	vendor := &mockVendor{listResponse: map[string]interface{}{}}
	svc := NewService(vendor, "space-1", "files.blog.example")

	_, err := svc.List(ListRequest{FatherID: "folder-9", SortType: 3, Start: 20, Limit: 50}, testCaller())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if vendor.lastList.FatherID != "folder-9" || vendor.lastList.SortType != 3 ||
		vendor.lastList.Start != 20 || vendor.lastList.Limit != 50 {
		t.Fatalf("explicit values overridden: %+v", vendor.lastList)
	}
}

func TestDownloadRewritesHost(t *testing.T) {
	vendor := &mockVendor{downloadResp: map[string]interface{}{
		"errcode":      float64(0),
		"download_url": "http://vendor.example/f/abc?x=1&sign=zz",
	}}
	svc := NewService(vendor, "space-1", "files.blog.example")

	data, err := svc.Download("file-1", testCaller())
	if err != nil {
		t.Fatalf("download failed: %v", err)
	}

	want := "https://files.blog.example/f/abc?x=1&sign=zz"
	if data["download_url"] != want {
		t.Fatalf("download_url = %q, want %q", data["download_url"], want)
	}
	if vendor.lastFileID != "file-1" {
		t.Fatalf("fileid = %q", vendor.lastFileID)
	}
}

func TestDownloadLeavesVendorErrorAlone(t *testing.T) {
	vendor := &mockVendor{downloadResp: map[string]interface{}{
		"errcode": float64(40001),
		"errmsg":  "invalid fileid",
	}}
	svc := NewService(vendor, "space-1", "files.blog.example")

	data, err := svc.Download("file-1", testCaller())
	if err != nil {
		t.Fatalf("download failed: %v", err)
	}
	if _, ok := data["download_url"]; ok {
		t.Fatal("no url should be added on vendor error")
	}
}

func TestDownloadRequiresFileID(t *testing.T) {
	svc := NewService(&mockVendor{}, "space-1", "files.blog.example")
	if _, err := svc.Download("", testCaller()); !apperr.IsKind(err, apperr.Validation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
