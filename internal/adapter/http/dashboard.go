package httpadapter

import (
	"errors"
	"net/http"

	"adwallet/internal/core/domain"
	"adwallet/internal/core/port"
)

// multipartMemory is how much of an upload is buffered in memory before the
// rest spills to temporary files.
const multipartMemory = 32 << 20

type publisherDashboardView struct {
	Profile profileView `json:"profile"`
	Videos  []videoView `json:"videos"`
}

type advertiserDashboardView struct {
	Profile   profileView    `json:"profile"`
	Videos    []videoView    `json:"videos"`
	Campaigns []campaignView `json:"campaigns"`
}

// handlePublisherDashboard lists every video for a registered publisher.
// Anyone else is sent home.
func (h *Handler) handlePublisherDashboard(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.PublisherDashboard(r.Context(), identityFrom(r.Context()).Wallet)
	if err != nil {
		h.pageFailure(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, publisherDashboardView{
		Profile: newProfileView(d.Profile),
		Videos:  newVideoViews(d.Videos),
	})
}

func (h *Handler) handleAdvertiserDashboard(w http.ResponseWriter, r *http.Request) {
	h.renderAdvertiserDashboard(w, r, identityFrom(r.Context()).Wallet)
}

func (h *Handler) renderAdvertiserDashboard(w http.ResponseWriter, r *http.Request, wallet string) {
	d, err := h.svc.AdvertiserDashboard(r.Context(), wallet)
	if err != nil {
		h.pageFailure(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, advertiserDashboardView{
		Profile:   newProfileView(d.Profile),
		Videos:    newVideoViews(d.Videos),
		Campaigns: newCampaignViews(d.Campaigns),
	})
}

// handleAdvertiserUpload accepts a multipart form with "title" and
// "video_file". An incomplete form renders the dashboard again without
// creating anything.
func (h *Handler) handleAdvertiserUpload(w http.ResponseWriter, r *http.Request) {
	wallet := identityFrom(r.Context()).Wallet
	if h.opts.MaxUploadBytes > 0 {
		if r.ContentLength > h.opts.MaxUploadBytes {
			http.Error(w, "upload too large", http.StatusRequestEntityTooLarge)
			return
		}
		r.Body = http.MaxBytesReader(w, r.Body, h.opts.MaxUploadBytes)
	}

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, "upload too large", http.StatusRequestEntityTooLarge)
			return
		}
	}
	if r.MultipartForm != nil {
		defer func() { _ = r.MultipartForm.RemoveAll() }()
	}

	upload := port.VideoUpload{Title: r.PostFormValue("title")}
	if file, hdr, err := r.FormFile("video_file"); err == nil {
		defer file.Close()
		upload.File = file
		upload.Filename = hdr.Filename
	}

	_, err := h.svc.UploadVideo(r.Context(), wallet, upload)
	switch {
	case err == nil:
		http.Redirect(w, r, domain.RoleAdvertiser.DashboardPath(), http.StatusFound)
	case domain.KindOf(err) == domain.KindInvalidInput:
		h.renderAdvertiserDashboard(w, r, wallet)
	default:
		h.pageFailure(w, r, err)
	}
}
