package render

// viewTemplates mirrors the markup the original pages built by string
// concatenation: stat cards, back-office tables, product cards, the
// cart and auth modals, the review block.
const viewTemplates = `
{{define "dashboard"}}<div class="stats-grid">
  <div class="stat-card products"><div class="info"><h4>Total Products</h4><p>{{.Products}}</p></div></div>
  <div class="stat-card blog"><div class="info"><h4>Blog Posts</h4><p>{{.BlogPosts}}</p></div></div>
  <div class="stat-card reviews"><div class="info"><h4>Total Reviews</h4><p>{{.Reviews}}</p></div></div>
  <div class="stat-card users"><div class="info"><h4>Registered Users</h4><p>{{.Users}}</p></div></div>
</div>{{end}}

{{define "productTable"}}<div class="content-header">
  <h2>All Products</h2>
  <button class="btn btn-primary" data-action="add-product">Add New Product</button>
</div>
<div class="table-container"><table>
<thead><tr><th>ID</th><th>Name</th><th>Price</th><th>Category</th><th>Featured</th><th>Actions</th></tr></thead>
<tbody>{{range .}}<tr>
  <td>{{.ID}}</td>
  <td>{{.Name}}</td>
  <td>{{price .Price}}</td>
  <td>{{.Category}}</td>
  <td><button class="featured-toggle {{if .Featured}}on{{else}}off{{end}}" data-action="toggle-featured" data-id="{{.ID}}">★</button></td>
  <td class="actions">
    <button class="edit-btn" data-action="edit-product" data-id="{{.ID}}">Edit</button>
    <button class="delete-btn" data-action="delete-product" data-id="{{.ID}}">Delete</button>
  </td>
</tr>{{end}}</tbody>
</table></div>{{end}}

{{define "blogTable"}}<div class="content-header">
  <h2>All Blog Posts</h2>
  <button class="btn btn-primary" data-action="add-post">Add New Post</button>
</div>
<div class="table-container"><table>
<thead><tr><th>ID</th><th>Title</th><th>Author</th><th>Date</th><th>Actions</th></tr></thead>
<tbody>{{range .}}<tr>
  <td>{{.ID}}</td>
  <td>{{.Title}}</td>
  <td>{{.Author}}</td>
  <td>{{.Date}}</td>
  <td class="actions">
    <button class="edit-btn" data-action="edit-post" data-id="{{.ID}}">Edit</button>
    <button class="delete-btn" data-action="delete-post" data-id="{{.ID}}">Delete</button>
  </td>
</tr>{{end}}</tbody>
</table></div>{{end}}

{{define "reviewTable"}}<div class="content-header"><h2>All Reviews</h2></div>
<div class="table-container"><table>
<thead><tr><th>Product ID</th><th>Author</th><th>Rating</th><th>Comment</th><th>Actions</th></tr></thead>
<tbody>{{range .}}<tr>
  <td>{{.ProductID}}</td>
  <td>{{.UserName}}</td>
  <td>{{stars .Rating}}</td>
  <td>{{truncate .Comment 50}}</td>
  <td class="actions">
    <button class="delete-btn" data-action="delete-review" data-product-id="{{.ProductID}}" data-comment="{{.Comment}}">Delete</button>
  </td>
</tr>{{end}}</tbody>
</table></div>{{end}}

{{define "userTable"}}<div class="content-header"><h2>Registered Users</h2></div>
<div class="table-container"><table>
<thead><tr><th>Email</th><th>Actions</th></tr></thead>
<tbody>{{range .}}<tr>
  <td>{{.Email}}</td>
  <td class="actions"><button class="delete-btn" data-action="delete-user" data-email="{{.Email}}">Delete</button></td>
</tr>{{end}}</tbody>
</table></div>{{end}}

{{define "productCard"}}<div class="grid-item" data-id="{{.Product.ID}}" data-category="{{.Product.Category}}" data-price="{{.Product.Price}}" data-name="{{.Product.Name}}">
  <button class="wishlist-btn{{if .Wishlisted}} active{{end}}" data-action="toggle-wishlist" data-id="{{.Product.ID}}">&#9829;</button>
  <img src="{{.Product.Image}}" alt="{{.Product.Name}}" loading="lazy">
  <div class="grid-item-content">
    <h3>{{.Product.Name}}</h3>
    <p class="price">{{price .Product.Price}}</p>
    <div class="product-actions">
      <button class="btn btn-secondary add-to-cart" data-action="add-to-cart" data-id="{{.Product.ID}}">Add to Cart</button>
      <a href="?view=detail&amp;id={{.Product.ID}}" class="btn btn-outline">Details</a>
    </div>
  </div>
</div>{{end}}

{{define "productGrid"}}{{range .}}{{template "productCard" .}}{{end}}{{end}}

{{define "home"}}<section id="featured-products">
  <h2>Featured Products</h2>
  <div class="grid">{{template "productGrid" .Cards}}</div>
</section>{{end}}

{{define "shop"}}<section id="shop">
  <div class="shop-controls" data-category="{{.Category}}" data-term="{{.Term}}" data-sort="{{.Sort}}"></div>
  {{if .Cards}}<div class="grid" id="shop-grid">{{template "productGrid" .Cards}}</div>
  {{else}}<p id="no-products-message">No products match your search.</p>{{end}}
</section>{{end}}

{{define "productDetail"}}<div class="product-detail-layout">
  <img src="{{.Product.Image}}" alt="{{.Product.Name}}" class="main-product-image">
  <div class="product-info">
    <h1 class="product-title">{{.Product.Name}}</h1>
    <p class="product-price">{{price .Product.Price}}</p>
    <p class="product-short-description">{{.Product.Description}}</p>
    <div class="product-purchase-actions">
      <button class="btn btn-primary" data-action="add-to-cart" data-id="{{.Product.ID}}">Add to Cart</button>
      <button class="btn btn-outline wishlist-btn{{if .Wishlisted}} active{{end}}" data-action="toggle-wishlist" data-id="{{.Product.ID}}">{{if .Wishlisted}}Wishlisted{{else}}Add to Wishlist{{end}}</button>
    </div>
    <div class="product-details-accordion">
      <h3>Product Details</h3>
      <ul>{{range $key, $value := .Product.Details}}<li><strong>{{title $key}}:</strong> {{$value}}</li>{{end}}</ul>
      <h3>Care Instructions</h3>
      <p>{{.Product.Care}}</p>
    </div>
  </div>
</div>
<section id="related-products"><h2>Related Products</h2>
  <div class="grid">{{template "productGrid" .Related}}</div>
</section>
{{template "reviewBlock" .ReviewBlock}}{{end}}

{{define "reviewBlock"}}<section id="reviews">
  <div id="reviews-summary">{{if .HasReviews}}Average Rating: {{.Average}}/5 ({{.Count}} reviews){{else}}No reviews yet.{{end}}</div>
  <div id="reviews-list">{{range .Reviews}}<div class="review-item">
    <div class="review-header"><span class="review-author">{{.UserName}}</span><span class="review-rating">{{stars .Rating}}</span></div>
    <p class="review-text">{{.Comment}}</p>
    <small class="review-date">{{.Date}}</small>
  </div>{{end}}</div>
  <div id="review-form-container">{{if .LoggedIn}}<h3>Write a Review</h3>
    <form id="review-form" data-action="post-review" data-product-id="{{.ProductID}}"></form>
  {{else}}<p>Please <a href="#" data-action="show-login">log in</a> to write a review.</p>{{end}}</div>
</section>{{end}}

{{define "cartModal"}}<div class="modal-content cart-content">
  <h2>Your Shopping Cart</h2>
  <div id="cart-items">{{if .Rows}}{{range .Rows}}<div class="cart-item">
    <div class="cart-item-info"><h4>{{.Product.Name}}</h4><p class="price">{{price .Product.Price}}</p></div>
    <div class="cart-item-actions">
      <div class="cart-item-quantity">
        <button data-action="change-quantity" data-id="{{.Product.ID}}" data-delta="-1">-</button>
        <span>{{.Quantity}}</span>
        <button data-action="change-quantity" data-id="{{.Product.ID}}" data-delta="1">+</button>
      </div>
      <p class="cart-item-price">{{price .LineTotal}}</p>
    </div>
  </div>{{end}}{{else}}<p class="empty-cart-message">Your cart is currently empty.</p>{{end}}</div>
  <div class="cart-summary">
    <p>Total: <span id="cart-total">{{price .Total}}</span></p>
    <button class="btn btn-primary" data-action="checkout"{{if not .Rows}} disabled{{end}}>Proceed to Checkout</button>
  </div>
</div>{{end}}

{{define "authForm"}}{{if eq .Mode "register"}}<form id="register-form" data-action="register">
  <h2>Register</h2>
  <div class="form-field"><label for="register-email">Email</label><input type="email" id="register-email" name="email" required></div>
  <div class="form-field"><label for="register-password">Password</label><input type="password" id="register-password" name="password" minlength="6" required></div>
  <button type="submit" class="btn btn-primary">Register</button>
  <p class="form-link">Already have an account? <a data-action="show-login">Login here</a></p>
</form>{{else}}<form id="login-form" data-action="login">
  <h2>Login</h2>
  <div class="form-field"><label for="login-email">Email</label><input type="email" id="login-email" name="email" required></div>
  <div class="form-field"><label for="login-password">Password</label><input type="password" id="login-password" name="password" required></div>
  <button type="submit" class="btn btn-primary">Login</button>
  <p class="form-link">Don't have an account? <a data-action="show-register">Register here</a></p>
</form>{{end}}{{end}}

{{define "blogCard"}}<div class="grid-item" data-tags="{{range $i, $t := .Tags}}{{if $i}},{{end}}{{$t}}{{end}}">
  <a href="?view=article&amp;id={{.ID}}">
    <img src="{{.Image}}" alt="{{.Title}}" loading="lazy">
    <div class="grid-item-content"><h3>{{.Title}}</h3><p>{{excerpt .Content 100}}</p><small>{{.Date}}</small></div>
  </a>
</div>{{end}}

{{define "blogGrid"}}<section id="blog">
  <div id="blog-tag-cloud"><span class="tag{{if eq .ActiveTag "all"}} active{{end}}" data-tag="all">All</span>{{$active := .ActiveTag}}{{range .Tags}}<span class="tag{{if eq . $active}} active{{end}}" data-tag="{{.}}">{{.}}</span>{{end}}</div>
  {{if .Posts}}<div class="grid" id="blog-grid">{{range .Posts}}{{template "blogCard" .}}{{end}}</div>
  {{else}}<p id="no-articles-message">No articles match your search.</p>{{end}}
</section>{{end}}

{{define "article"}}<article>
  <header class="article-header">
    <h1>{{.Title}}</h1>
    <p class="article-meta">Published on {{.Date}} | By {{.Author}}</p>
  </header>
  <img src="{{.Image}}" alt="{{.Title}}" loading="eager">
  <section class="article-content">{{rich .Content}}</section>
</article>{{end}}

{{define "profile"}}<section id="profile-hero">
  <h1>Welcome, {{.Name}}</h1>
  <p>Manage your account details and view your saved items.</p>
</section>
<section id="wishlist">
  <h2>Your Wishlist</h2>
  {{if .Cards}}<div class="grid" id="wishlist-grid">{{template "productGrid" .Cards}}</div>
  {{else}}<p id="no-wishlist-message">Your wishlist is empty.</p>{{end}}
  <button class="btn btn-outline" data-action="logout">Log Out</button>
</section>{{end}}

{{define "notFound"}}<p class="info-message">{{.}}</p>{{end}}
`
