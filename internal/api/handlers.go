package api

import (
	"net/http"

	"weeks-worth/internal/account"
	"weeks-worth/internal/group"
	"weeks-worth/internal/recipe"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	h := s.deps.Metrics.Health(r.Context(), s.deps.DataDir)
	status := http.StatusOK
	if h.Status != "ok" {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, h)
}

// --- Accounts ---

type tokenRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var in account.RegisterInput
	if err := decode(w, r, &in); err != nil {
		s.writeError(w, r, err)
		return
	}
	ind, err := s.deps.Accounts.Register(r.Context(), in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, ind)
}

func (s *Server) handleToken(w http.ResponseWriter, r *http.Request) {
	var in tokenRequest
	if err := decode(w, r, &in); err != nil {
		s.writeError(w, r, err)
		return
	}
	token, err := s.deps.Accounts.Login(r.Context(), in.Username, in.Password)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tokenResponse{Token: token})
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request, me *account.Individual) {
	profile, err := s.deps.Accounts.Me(r.Context(), me)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (s *Server) handleUpdateMe(w http.ResponseWriter, r *http.Request, me *account.Individual) {
	var in account.UpdateInput
	if err := decode(w, r, &in); err != nil {
		s.writeError(w, r, err)
		return
	}
	profile, err := s.deps.Accounts.UpdateIndividual(r.Context(), me, in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (s *Server) handleGetIndividual(w http.ResponseWriter, r *http.Request, me *account.Individual) {
	q := r.URL.Query()
	profile, err := s.deps.Accounts.GetIndividual(r.Context(), me, account.Lookup{
		ID:    q.Get("id"),
		Email: q.Get("email"),
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (s *Server) handleAllIndividuals(w http.ResponseWriter, r *http.Request, me *account.Individual) {
	profiles, err := s.deps.Accounts.AllIndividuals(r.Context(), me)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, profiles)
}

// --- Recipes ---

type importRequest struct {
	URL string `json:"url"`
}

func recipeLookup(r *http.Request) recipe.Lookup {
	q := r.URL.Query()
	return recipe.Lookup{ID: q.Get("id"), Name: q.Get("name")}
}

func (s *Server) handleListRecipes(w http.ResponseWriter, r *http.Request) {
	recipes, err := s.deps.Recipes.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, recipes)
}

func (s *Server) handleRecipeURLs(w http.ResponseWriter, r *http.Request) {
	urls, err := s.deps.Recipes.URLs(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, urls)
}

func (s *Server) handleGetRecipe(w http.ResponseWriter, r *http.Request) {
	rec, err := s.deps.Recipes.Get(r.Context(), recipeLookup(r))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleCreateRecipe(w http.ResponseWriter, r *http.Request, _ *account.Individual) {
	var in recipe.CreateInput
	if err := decode(w, r, &in); err != nil {
		s.writeError(w, r, err)
		return
	}
	rec, err := s.deps.Recipes.Create(r.Context(), in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

func (s *Server) handleImportRecipe(w http.ResponseWriter, r *http.Request, _ *account.Individual) {
	if s.deps.Importer == nil {
		s.writeError(w, r, errImportDisabled)
		return
	}
	var in importRequest
	if err := decode(w, r, &in); err != nil {
		s.writeError(w, r, err)
		return
	}
	rec, err := s.deps.Importer.ImportURL(r.Context(), in.URL)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

func (s *Server) handleUpdateRecipe(w http.ResponseWriter, r *http.Request, _ *account.Individual) {
	var in recipe.UpdateInput
	if err := decode(w, r, &in); err != nil {
		s.writeError(w, r, err)
		return
	}
	rec, err := s.deps.Recipes.Update(r.Context(), r.PathValue("id"), in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleAddStep(w http.ResponseWriter, r *http.Request, _ *account.Individual) {
	var in recipe.StepInput
	if err := decode(w, r, &in); err != nil {
		s.writeError(w, r, err)
		return
	}
	step, err := s.deps.Recipes.AddStep(r.Context(), r.PathValue("id"), in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, step)
}

func (s *Server) handleDeleteRecipe(w http.ResponseWriter, r *http.Request, _ *account.Individual) {
	rec, err := s.deps.Recipes.Delete(r.Context(), recipeLookup(r))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// --- Groups ---

type createGroupRequest struct {
	Name string `json:"name"`
}

type inviteRequest struct {
	IndividualID string `json:"individual_id"`
}

type leaveRequest struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type leaveResponse struct {
	GroupDeleted bool `json:"group_deleted"`
}

func (s *Server) handleListGroups(w http.ResponseWriter, r *http.Request) {
	groups, err := s.deps.Groups.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, groups)
}

func (s *Server) handleGetGroup(w http.ResponseWriter, r *http.Request, me *account.Individual) {
	q := r.URL.Query()
	g, err := s.deps.Groups.Get(r.Context(), me.ID, group.Lookup{ID: q.Get("id"), Name: q.Get("name")})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, g)
}

func (s *Server) handleMyGroups(w http.ResponseWriter, r *http.Request, me *account.Individual) {
	groups, err := s.deps.Groups.MyGroups(r.Context(), me.ID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, groups)
}

func (s *Server) handleCreateGroup(w http.ResponseWriter, r *http.Request, me *account.Individual) {
	var in createGroupRequest
	if err := decode(w, r, &in); err != nil {
		s.writeError(w, r, err)
		return
	}
	g, err := s.deps.Groups.Create(r.Context(), me.ID, in.Name)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, g)
}

func (s *Server) handleUpdateGroup(w http.ResponseWriter, r *http.Request, me *account.Individual) {
	var in group.UpdateInput
	if err := decode(w, r, &in); err != nil {
		s.writeError(w, r, err)
		return
	}
	g, err := s.deps.Groups.Update(r.Context(), me.ID, r.PathValue("id"), in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, g)
}

func (s *Server) handleDeleteGroup(w http.ResponseWriter, r *http.Request, me *account.Individual) {
	deleted, err := s.deps.Groups.Delete(r.Context(), me.ID, r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, deleted)
}

func (s *Server) handleRequestAccess(w http.ResponseWriter, r *http.Request, me *account.Individual) {
	g, err := s.deps.Groups.RequestAccess(r.Context(), me.ID, r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, g)
}

func (s *Server) handleCancelRequest(w http.ResponseWriter, r *http.Request, me *account.Individual) {
	g, err := s.deps.Groups.CancelRequest(r.Context(), me.ID, r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, g)
}

func (s *Server) handleInvite(w http.ResponseWriter, r *http.Request, me *account.Individual) {
	var in inviteRequest
	if err := decode(w, r, &in); err != nil {
		s.writeError(w, r, err)
		return
	}
	g, err := s.deps.Groups.Invite(r.Context(), me.ID, in.IndividualID, r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, g)
}

func (s *Server) handleLeaveGroup(w http.ResponseWriter, r *http.Request, me *account.Individual) {
	var in leaveRequest
	if err := decode(w, r, &in); err != nil {
		s.writeError(w, r, err)
		return
	}
	deleted, err := s.deps.Groups.Leave(r.Context(), me.ID, group.Lookup{ID: in.ID, Name: in.Name})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, leaveResponse{GroupDeleted: deleted})
}

// --- Messages ---

type messageRequest struct {
	Message string `json:"message"`
}

type messageResponse struct {
	Success bool `json:"success"`
}

func (s *Server) handleMessageMe(w http.ResponseWriter, r *http.Request, me *account.Individual) {
	var in messageRequest
	if err := decode(w, r, &in); err != nil {
		s.writeError(w, r, err)
		return
	}
	ok, err := s.deps.Messages.MessageMe(r.Context(), me.Email, in.Message)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Success: ok})
}
