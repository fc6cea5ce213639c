package render

// Section templates. These mirror the bulletin's card-based layout; the
// surrounding page shell belongs to the host application.
const sectionTemplates = `
{{define "post_card"}}
<div class="card post-card mb-3">
  <div class="card-body">
    <div class="post-meta">
      <span class="badge grade-badge">{{upper .Post.GradeLevel}}</span>
      <span class="badge bg-info">{{.Post.PostType}}</span>
      <small class="text-muted ms-2">By {{.Post.AuthorName}} &bull; {{date .Post.CreatedAt}}</small>
    </div>
    <h5 class="post-title">{{.Post.Title}}</h5>
    <div class="post-content">{{nl2br .Post.Content}}</div>
    {{if .ShowVoting}}
    <div class="post-actions">
      <span class="text-muted">{{.Post.VoteCount}} vote{{if ne .Post.VoteCount 1}}s{{end}} this month</span>
      {{if votable .Viewer .Post}}
      <form method="post" action="/posts/{{.Post.ID}}/vote" class="vote-form">
        <button type="submit" class="btn vote-btn">Vote</button>
      </form>
      {{else if hasVoted .Post}}
      <button class="btn vote-btn disabled" disabled>Voted</button>
      {{end}}
    </div>
    {{end}}
  </div>
</div>
{{end}}

{{define "home"}}
<div class="row">
  <div class="col-md-8">
    <div class="card mb-4">
      <div class="card-header"><h5>Principal's Note</h5></div>
      <div class="card-body" id="principal-note">
        {{if not .Authenticated}}<p class="text-muted">` + TextLoginToView + `</p>
        {{else if .PrincipalNote}}
          <h6>{{.PrincipalNote.Title}}</h6>
          <p>{{nl2br .PrincipalNote.Content}}</p>
          <small class="text-muted">Updated: {{date .PrincipalNote.UpdatedAt}}</small>
        {{end}}
      </div>
    </div>
    <div class="card mb-4">
      <div class="card-header"><h5>Recent Articles</h5></div>
      <div class="card-body" id="recent-news">
        {{if not .Authenticated}}<p class="text-muted">` + TextLoginToView + `</p>
        {{else}}{{range .RecentArticles}}
          <div class="mb-3">
            <h6>{{.Title}}</h6>
            <p class="text-muted small">{{trunc .Content 150}}</p>
            <small class="text-muted">By {{.AuthorName}} &bull; {{date .CreatedAt}}</small>
          </div>
        {{end}}{{end}}
      </div>
    </div>
  </div>
  <div class="col-md-4">
    <div class="card mb-4">
      <div class="card-header"><h5>Important Reminders</h5></div>
      <div class="card-body" id="important-reminders">
        {{if not .Authenticated}}<p class="text-muted">` + TextLoginToView + `</p>
        {{else}}{{range .Reminders}}
          <div class="mb-2">
            <strong>{{.Title}}</strong>
            <p class="small mb-1">{{.Content}}</p>
            <small class="text-muted">{{date .CreatedAt}}</small>
          </div>
        {{end}}{{end}}
      </div>
    </div>
    {{if .Winners}}
    <div class="card mb-4" id="winners-card">
      <div class="card-header"><h5>Monthly Winners ({{.WinnersMonth}})</h5></div>
      <div class="card-body" id="monthly-winners">
        {{range .Winners}}
        <div class="mb-2">
          <div class="d-flex justify-content-between align-items-center">
            <strong>{{.PostTitle}}</strong>
            <span class="badge bg-success">{{.VoteCount}} votes</span>
          </div>
          <small class="text-muted">By {{.PostAuthor}} &bull; {{upper .GradeLevel}}</small>
        </div>
        {{end}}
      </div>
    </div>
    {{end}}
  </div>
</div>
{{end}}

{{define "articles"}}
<h4>Top Articles This Month</h4>
<div id="top-articles">
  {{if .TopErr}}<p class="text-danger">` + TextLoadError + `</p>
  {{else if not .TopArticles}}<p class="text-muted">` + TextNoTopArticles + `</p>
  {{else}}{{$viewer := .Viewer}}{{range .TopArticles}}{{template "post_card" (votecard . $viewer)}}{{end}}{{end}}
</div>
<h4>All Articles</h4>
<div id="all-articles">
  {{if .AllErr}}<p class="text-danger">` + TextLoadError + `</p>
  {{else if not .AllArticles}}<p class="text-muted">` + TextNoArticles + `</p>
  {{else}}{{$viewer := .Viewer}}{{range .AllArticles}}{{template "post_card" (votecard . $viewer)}}{{end}}{{end}}
</div>
{{end}}

{{define "announcements"}}
<div id="announcements-content">
  {{if not .Posts}}<p class="text-muted">` + TextNoAnnouncements + `</p>
  {{else}}{{range .Posts}}{{template "post_card" (plaincard .)}}{{end}}{{end}}
</div>
{{end}}

{{define "reminders"}}
<div id="reminders-content">
  {{if not .Posts}}<p class="text-muted">` + TextNoReminders + `</p>
  {{else}}{{range .Posts}}{{template "post_card" (plaincard .)}}{{end}}{{end}}
</div>
{{end}}

{{define "admin"}}
{{if .Denied}}<p class="text-danger">` + TextAccessDenied + `</p>
{{else}}
{{if .Stats}}
<div class="row mb-4" id="admin-stats">
  <div class="col"><strong id="total-users">{{.Stats.TotalUsers}}</strong> users</div>
  <div class="col"><strong id="total-posts">{{.Stats.TotalPosts}}</strong> posts</div>
  <div class="col"><strong id="total-votes">{{.Stats.TotalVotes}}</strong> votes</div>
  <div class="col"><strong id="active-users">{{.Stats.ActiveUsers}}</strong> active</div>
</div>
{{end}}
<div id="user-management">
  {{$viewer := .Viewer}}
  {{range .Users}}
  <div class="user-item">
    <div>
      <strong>{{.FirstName}} {{.LastName}}</strong><br>
      <small class="text-muted">{{.Username}} &bull; {{.Email}}</small><br>
      <span class="badge role-badge">{{.Role}}</span>
      <span class="badge grade-badge">{{.GradeLevel}}</span>
    </div>
    {{if ne .ID $viewer.ID}}
    <form method="post" action="/admin/users/{{.ID}}/delete">
      <input type="hidden" name="confirm" value="yes">
      <button type="submit" class="btn btn-sm btn-outline-danger">Delete</button>
    </form>
    {{end}}
  </div>
  {{end}}
</div>
<div id="content-management">
  {{range .Posts}}
  <div class="user-item">
    <div>
      <strong>{{.Title}}</strong><br>
      <small class="text-muted">By {{.AuthorName}} &bull; {{date .CreatedAt}}</small><br>
      <span class="badge bg-info">{{.PostType}}</span>
      <span class="badge grade-badge">{{.GradeLevel}}</span>
      {{if .IsPublished}}<span class="badge bg-success">Published</span>{{else}}<span class="badge bg-warning">Draft</span>{{end}}
    </div>
    <form method="post" action="/admin/posts/{{.ID}}/delete">
      <input type="hidden" name="confirm" value="yes">
      <button type="submit" class="btn btn-sm btn-outline-danger">Delete</button>
    </form>
  </div>
  {{end}}
</div>
{{end}}
{{end}}

{{define "about"}}
<div id="about-content">
  {{if not .Sections}}<div class="alert alert-info">` + TextNoAbout + `</div>
  {{else}}{{range .Sections}}
  <div class="card mb-4 shadow-sm">
    <div class="card-header"><h5 class="mb-0">{{.Title}}</h5></div>
    <div class="card-body"><div class="about-content">{{markdown .Content}}</div></div>
  </div>
  {{end}}{{end}}
</div>
{{end}}

{{define "about_manage"}}
<div id="about-management-content">
  {{if not .Sections}}<div class="alert alert-info">No sections created yet</div>
  {{else}}
  <table class="table table-striped">
    <thead>
      <tr><th>Title</th><th>Section Name</th><th>Order</th><th>Status</th><th>Last Updated</th><th>Actions</th></tr>
    </thead>
    <tbody>
      {{range .Sections}}
      <tr>
        <td>{{.Title}}</td>
        <td><code>{{.SectionName}}</code></td>
        <td>{{.DisplayOrder}}</td>
        <td>{{if .IsActive}}<span class="badge bg-success">Active</span>{{else}}<span class="badge bg-secondary">Inactive</span>{{end}}</td>
        <td>{{date .UpdatedAt}}</td>
        <td>
          <a class="btn btn-sm btn-outline-primary" href="/admin/about/{{.ID}}/edit">Edit</a>
          <form method="post" action="/admin/about/{{.ID}}/delete" class="d-inline">
            <input type="hidden" name="confirm" value="yes">
            <button type="submit" class="btn btn-sm btn-outline-danger">Delete</button>
          </form>
        </td>
      </tr>
      {{end}}
    </tbody>
  </table>
  {{end}}
</div>
{{end}}

{{define "profile"}}
<div class="row" id="profile-content">
  <div class="col-md-6">
    <h5>Personal Information</h5>
    <p><strong>Name:</strong> {{.Identity.FirstName}} {{.Identity.LastName}}</p>
    <p><strong>Username:</strong> {{.Identity.Username}}</p>
    <p><strong>Email:</strong> {{.Identity.Email}}</p>
    <p><strong>Role:</strong> <span class="badge role-badge">{{.Identity.Role}}</span></p>
    <p><strong>Grade Level:</strong> <span class="badge grade-badge">{{.Identity.GradeLevel}}</span></p>
    <p><strong>Member Since:</strong> {{date .Identity.CreatedAt}}</p>
  </div>
  <div class="col-md-6">
    <h5>Account Status</h5>
    <p><strong>Status:</strong>
      {{if .Identity.IsActive}}<span class="badge bg-success">Active</span>
      {{else}}<span class="badge bg-danger">Inactive</span>{{end}}
    </p>
    <p><strong>Permissions:</strong></p>
    <ul>{{range .Permissions}}<li>{{.}}</li>{{end}}</ul>
    <p><strong>Grade Access:</strong>
      {{range .GradeAccess}}<span class="badge grade-badge">{{upper .}}</span> {{end}}
    </p>
  </div>
</div>
{{end}}
`
