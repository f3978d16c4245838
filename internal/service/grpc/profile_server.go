package grpcsvc

import (
	"context"

	log "github.com/sirupsen/logrus"

	webshopv1 "github.com/vladislavdragonenkov/webshop/api/webshop/v1"
	"github.com/vladislavdragonenkov/webshop/internal/auth"
	"github.com/vladislavdragonenkov/webshop/internal/domain"
)

// ProfileServer реализует webshopv1.ProfileServiceServer.
type ProfileServer struct {
	webshopv1.UnimplementedProfileServiceServer

	profiles ProfileService
	idem     *Idempotency
	logger   *log.Entry
}

// NewProfileServer создаёт gRPC-обработчик профилей.
func NewProfileServer(profiles ProfileService, idem *Idempotency, logger *log.Entry) *ProfileServer {
	return &ProfileServer{profiles: profiles, idem: idem, logger: logger}
}

func profileResponse(p domain.Profile) *webshopv1.ProfileResponse {
	return &webshopv1.ProfileResponse{Profile: toProfile(p)}
}

func profilesResponse(list []domain.Profile) *webshopv1.ProfilesResponse {
	return &webshopv1.ProfilesResponse{Profiles: toProfiles(list)}
}

func (s *ProfileServer) FindProfileByID(ctx context.Context, req *webshopv1.IDRequest) (*webshopv1.ProfileResponse, error) {
	p, err := s.profiles.FindProfileByID(ctx, auth.CallerFrom(ctx), req.GetId())
	return respond(s.logger, "FindProfileByID", p, err, profileResponse)
}

func (s *ProfileServer) FindProfileByEmail(ctx context.Context, req *webshopv1.EmailRequest) (*webshopv1.ProfileResponse, error) {
	p, err := s.profiles.FindProfileByEmail(ctx, auth.CallerFrom(ctx), req.GetEmail())
	return respond(s.logger, "FindProfileByEmail", p, err, profileResponse)
}

func (s *ProfileServer) FindProfileWithOrdersByEmail(ctx context.Context, req *webshopv1.EmailRequest) (*webshopv1.ProfileResponse, error) {
	p, err := s.profiles.FindProfileWithOrdersByEmail(ctx, auth.CallerFrom(ctx), req.GetEmail())
	return respond(s.logger, "FindProfileWithOrdersByEmail", p, err, profileResponse)
}

func (s *ProfileServer) FindProfilesByLastName(ctx context.Context, req *webshopv1.NameRequest) (*webshopv1.ProfilesResponse, error) {
	list, err := s.profiles.FindProfilesByLastName(ctx, auth.CallerFrom(ctx), req.GetName())
	return respond(s.logger, "FindProfilesByLastName", list, err, profilesResponse)
}

func (s *ProfileServer) FindAllProfilesByRole(ctx context.Context, req *webshopv1.RoleRequest) (*webshopv1.ProfilesResponse, error) {
	list, err := s.profiles.FindAllProfilesByRole(ctx, auth.CallerFrom(ctx), domain.Role(req.GetRole()))
	return respond(s.logger, "FindAllProfilesByRole", list, err, profilesResponse)
}

func (s *ProfileServer) CreateProfile(ctx context.Context, req *webshopv1.CreateProfileRequest) (*webshopv1.ProfileResponse, error) {
	return runIdempotent(ctx, s.idem, webshopv1.ProfileService_CreateProfile_FullMethodName, req,
		func(ctx context.Context) (*webshopv1.ProfileResponse, error) {
			p, err := s.profiles.CreateProfile(ctx, auth.CallerFrom(ctx), fromProfile(req.GetProfile()), req.GetPassword(), req.GetRepeatPassword())
			return respond(s.logger, "CreateProfile", p, err, profileResponse)
		})
}

func (s *ProfileServer) UpdateProfile(ctx context.Context, req *webshopv1.UpdateProfileRequest) (*webshopv1.ProfileResponse, error) {
	return runIdempotent(ctx, s.idem, webshopv1.ProfileService_UpdateProfile_FullMethodName, req,
		func(ctx context.Context) (*webshopv1.ProfileResponse, error) {
			p, err := s.profiles.UpdateProfile(ctx, auth.CallerFrom(ctx), fromProfile(req.GetProfile()))
			return respond(s.logger, "UpdateProfile", p, err, profileResponse)
		})
}

func (s *ProfileServer) DeleteProfile(ctx context.Context, req *webshopv1.VersionedRef) (*webshopv1.Empty, error) {
	return runIdempotent(ctx, s.idem, webshopv1.ProfileService_DeleteProfile_FullMethodName, req,
		func(ctx context.Context) (*webshopv1.Empty, error) {
			err := s.profiles.DeleteProfile(ctx, auth.CallerFrom(ctx), domain.Profile{ID: req.GetId(), Version: req.GetVersion()})
			if err != nil {
				return nil, toStatus(s.logger, "DeleteProfile", err)
			}
			return &webshopv1.Empty{}, nil
		})
}

func (s *ProfileServer) SetProfileStatus(ctx context.Context, req *webshopv1.SetProfileStatusRequest) (*webshopv1.ProfileResponse, error) {
	return runIdempotent(ctx, s.idem, webshopv1.ProfileService_SetProfileStatus_FullMethodName, req,
		func(ctx context.Context) (*webshopv1.ProfileResponse, error) {
			ref := domain.Profile{ID: req.GetId(), Version: req.GetVersion()}
			p, err := s.profiles.SetProfileStatus(ctx, auth.CallerFrom(ctx), ref, domain.ProfileStatus(req.GetStatus()))
			return respond(s.logger, "SetProfileStatus", p, err, profileResponse)
		})
}

// ChangePassword не кэшируется: тело запроса содержит пароли.
func (s *ProfileServer) ChangePassword(ctx context.Context, req *webshopv1.ChangePasswordRequest) (*webshopv1.ProfileResponse, error) {
	ref := domain.Profile{ID: req.GetId(), Version: req.GetVersion()}
	p, err := s.profiles.ChangePassword(ctx, auth.CallerFrom(ctx), ref, req.GetOldPassword(), req.GetNewPassword(), req.GetRepeatPassword())
	return respond(s.logger, "ChangePassword", p, err, profileResponse)
}
